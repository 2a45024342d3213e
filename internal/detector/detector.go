// Package detector checks that an input file looks like a CHIP-8 ROM.
package detector

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// ErrForeignFormat is returned for files that carry the header of a
// different system and can not be a raw CHIP-8 program image.
var ErrForeignFormat = errors.New("file is not a CHIP-8 ROM")

// extensions lists the file extensions commonly used for CHIP-8 ROMs.
var extensions = map[string]struct{}{
	".ch8": {},
	".c8":  {},
	".rom": {},
	".bin": {},
}

// headers of ROM formats of other systems that are rejected.
var headers = []struct {
	name  string
	magic []byte
}{
	{name: "NES", magic: []byte("NES\x1a")},
	{name: "ELF", magic: []byte("\x7fELF")},
	{name: "ZIP", magic: []byte("PK\x03\x04")},
}

// Detector checks input files before they are loaded into the machine.
type Detector struct {
	logger *log.Logger
}

// New creates a new ROM detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Check validates the program image read from the named file. An unknown
// file extension only results in a warning, a header of a different
// format returns an error.
func (d *Detector) Check(filename string, program []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := extensions[ext]; !ok {
		d.logger.Warn("Unexpected file extension for a CHIP-8 ROM",
			log.String("file", filename),
			log.String("extension", ext))
	}

	for _, header := range headers {
		if bytes.HasPrefix(program, header.magic) {
			return fmt.Errorf("%w: detected %s header", ErrForeignFormat, header.name)
		}
	}
	return nil
}
