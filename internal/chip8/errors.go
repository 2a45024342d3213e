package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode is matched by every DecodeError.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrProgramTooLarge is matched by every ProgramSizeError.
	ErrProgramTooLarge = errors.New("program too large")
)

// DecodeError is returned when an instruction word is not part of the
// instruction set.
type DecodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid opcode $%04X at address $%03X", e.Opcode, e.Address)
}

// Is reports whether the target is ErrInvalidOpcode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidOpcode
}

// ProgramSizeError is returned when a program image does not fit into the
// program area of memory.
type ProgramSizeError struct {
	Size int
}

func (e *ProgramSizeError) Error() string {
	return fmt.Sprintf("program size %d exceeds maximum of %d bytes", e.Size, MaxProgramSize)
}

// Is reports whether the target is ErrProgramTooLarge.
func (e *ProgramSizeError) Is(target error) bool {
	return target == ErrProgramTooLarge
}
