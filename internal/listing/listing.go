// Package listing writes disassembly listings of ROM images.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// Writer writes one line per instruction word of a ROM image, containing
// the address, the raw bytes and the mnemonic.
type Writer struct {
	writer io.Writer
}

// New creates a new listing writer.
func New(writer io.Writer) *Writer {
	return &Writer{
		writer: writer,
	}
}

// Write writes the listing of the program, assuming it is loaded at the
// program start address. A trailing odd byte is written as data byte.
func (w Writer) Write(program []byte) error {
	buf := bufio.NewWriter(w.writer)
	address := chip8.ProgramStart

	for i := 0; i+1 < len(program); i += 2 {
		opcode := uint16(program[i])<<8 | uint16(program[i+1])
		if _, err := fmt.Fprintf(buf, "$%03X: %02X %02X  %s\n",
			address, program[i], program[i+1], chip8.Disassemble(opcode)); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		address += 2
	}

	if len(program)%2 == 1 {
		last := program[len(program)-1]
		if _, err := fmt.Fprintf(buf, "$%03X: %02X     .byte $%02X\n", address, last, last); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing listing: %w", err)
	}
	return nil
}

// WriteFile writes the listing to the output file of the options, or to
// stdout if no output file is set.
func WriteFile(opts options.Program, program []byte) error {
	if opts.Output == "" {
		return New(os.Stdout).Write(program)
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}

	if err := New(file).Write(program); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", opts.Output, err)
	}
	return nil
}
