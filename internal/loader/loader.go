// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

var errEmptyROM = errors.New("ROM file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file named in the options. The ROM is a raw program
// image without header that has to fit into the program area of memory.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	program, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}
	return program, nil
}

// LoadReader reads a program image from a reader. The image is loaded as
// raw buffer cartridge, its PRG data is the program.
func (l *Loader) LoadReader(reader io.Reader) ([]byte, error) {
	// read one byte more than fits to detect oversized images
	cart, err := cartridge.LoadBuffer(io.LimitReader(reader, chip8.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	return l.LoadFromBytes(cart.PRG)
}

// LoadFromBytes validates a program image.
func (l *Loader) LoadFromBytes(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errEmptyROM
	}
	if len(data) > chip8.MaxProgramSize {
		return nil, &chip8.ProgramSizeError{Size: len(data)}
	}
	return data, nil
}
