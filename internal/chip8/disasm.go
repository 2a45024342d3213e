package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Disassemble returns the assembly representation of an instruction word,
// for example "ld V0, $05". Words that are not part of the instruction set
// are returned as a data word directive.
func Disassemble(opcode uint16) string {
	ins, ok := lookupInstruction(opcode)
	if !ok {
		return fmt.Sprintf(".word $%04X", opcode)
	}

	if params := formatInstruction(ins.Name, opcode); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// IsValidOpcode returns whether the instruction word can be executed.
func IsValidOpcode(opcode uint16) bool {
	return validOpcode(opcode)
}

// lookupInstruction finds the instruction definition of an opcode in the
// instruction table of the opcode family.
func lookupInstruction(opcode uint16) (*chip8.Instruction, bool) {
	if !validOpcode(opcode) {
		return nil, false
	}

	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value && op.Instruction != nil {
			return op.Instruction, true
		}
	}
	return nil, false
}

// validOpcode reports whether the interpreter executes the opcode.
func validOpcode(opcode uint16) bool {
	switch opcode & 0xF000 {
	case 0x0000:
		return opcode == 0x00E0 || opcode == 0x00EE
	case 0x5000, 0x9000:
		return n(opcode) == 0
	case 0x8000:
		sub := n(opcode)
		return sub <= 0x7 || sub == 0xE
	case 0xE000:
		return kk(opcode) == 0x9E || kk(opcode) == 0xA1
	case 0xF000:
		switch kk(opcode) {
		case 0x07, 0x0A, 0x15, 0x18, 0x1E, 0x29, 0x33, 0x55, 0x65:
			return true
		}
		return false
	default:
		return true
	}
}

// formatInstruction formats the parameters of an instruction.
func formatInstruction(name string, opcode uint16) string {
	switch name {
	case chip8.Cls.Name, chip8.Ret.Name:
		return ""
	case chip8.Jp.Name:
		return formatJumpInstruction(opcode)
	case chip8.Call.Name:
		return fmt.Sprintf("$%03X", nnn(opcode))
	case chip8.Se.Name, chip8.Sne.Name:
		return formatCompareInstruction(opcode)
	case chip8.Ld.Name:
		return formatLoadInstruction(opcode)
	case chip8.Add.Name:
		return formatAddInstruction(opcode)
	case chip8.Or.Name, chip8.And.Name, chip8.Xor.Name, chip8.Sub.Name, chip8.Subn.Name:
		return fmt.Sprintf("V%X, V%X", x(opcode), y(opcode))
	case chip8.Shr.Name, chip8.Shl.Name, chip8.Skp.Name, chip8.Sknp.Name:
		return fmt.Sprintf("V%X", x(opcode))
	case chip8.Rnd.Name:
		return fmt.Sprintf("V%X, $%02X", x(opcode), kk(opcode))
	case chip8.Drw.Name:
		return fmt.Sprintf("V%X, V%X, $%X", x(opcode), y(opcode), n(opcode))
	}
	return ""
}

// formatJumpInstruction formats jump instructions (JP addr, JP V0+addr).
func formatJumpInstruction(opcode uint16) string {
	if opcode&0xF000 == 0xB000 {
		return fmt.Sprintf("V0, $%03X", nnn(opcode))
	}
	return fmt.Sprintf("$%03X", nnn(opcode))
}

// formatCompareInstruction formats comparison instructions (SE, SNE).
func formatCompareInstruction(opcode uint16) string {
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x(opcode), kk(opcode))
	default: // 0x5000, 0x9000
		return fmt.Sprintf("V%X, V%X", x(opcode), y(opcode))
	}
}

// formatLoadInstruction formats the different forms of the LD instruction.
func formatLoadInstruction(opcode uint16) string {
	vx := x(opcode)

	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", vx, kk(opcode))
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", vx, y(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", nnn(opcode))
	}

	switch kk(opcode) {
	case 0x07:
		return fmt.Sprintf("V%X, DT", vx)
	case 0x0A:
		return fmt.Sprintf("V%X, K", vx)
	case 0x15:
		return fmt.Sprintf("DT, V%X", vx)
	case 0x18:
		return fmt.Sprintf("ST, V%X", vx)
	case 0x29:
		return fmt.Sprintf("F, V%X", vx)
	case 0x33:
		return fmt.Sprintf("B, V%X", vx)
	case 0x55:
		return fmt.Sprintf("[I], V%X", vx)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", vx)
	}
	return ""
}

// formatAddInstruction formats add instructions (ADD Vx, byte/Vy, ADD I, Vx).
func formatAddInstruction(opcode uint16) string {
	vx := x(opcode)

	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", vx, kk(opcode))
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", vx, y(opcode))
	default: // 0xF01E
		return fmt.Sprintf("I, V%X", vx)
	}
}
