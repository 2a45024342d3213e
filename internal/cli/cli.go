// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.Usage = func() {} // usage is printed by UsageError.ShowUsage
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Trace {
		opts.Debug = true
	}

	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	}
	if opts.Speed < 1 {
		return fmt.Errorf("invalid speed %d: must be at least 1", opts.Speed)
	}
	if opts.Cycles < 0 {
		return fmt.Errorf("invalid cycle count %d: must not be negative", opts.Cycles)
	}

	for _, valid := range options.Frontends {
		if opts.Frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(options.Frontends, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file of the disassembly listing, printed on console if no name given")
	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend, "frontend to run the program with ("+strings.Join(options.Frontends, "/")+")")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "size of a screen pixel in window pixels")
	flags.IntVar(&opts.Speed, "speed", opts.Speed, "instructions executed per second")
	flags.IntVar(&opts.Cycles, "cycles", 0, "stop after this many cycles, 0 runs until the program faults or is closed")
	flags.BoolVar(&opts.Disassemble, "disasm", false, "print a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.NoKeyWait, "nokeywait", false, "do not block on the wait for key instruction")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
