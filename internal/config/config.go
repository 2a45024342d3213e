// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateMachine creates the interpreter core configured by the program options.
// The tone hook is called whenever the sound timer expires.
func CreateMachine(opts options.Program, toneHook func()) *chip8.Chip8 {
	var machineOptions []chip8.Option
	if opts.NoKeyWait {
		machineOptions = append(machineOptions, chip8.WithNoopKeyWait())
	}
	if toneHook != nil {
		machineOptions = append(machineOptions, chip8.WithToneHook(toneHook))
	}
	return chip8.New(machineOptions...)
}
