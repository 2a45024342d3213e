// Package main implements the main entry point for the CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/listing"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Error("Parsing flags failed", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(opts)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Running ROM failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	program, err := loader.New().Load(opts)
	if err != nil {
		return err
	}
	if err := detector.New(logger).Check(opts.Input, program); err != nil {
		return fmt.Errorf("checking ROM %s: %w", opts.Input, err)
	}

	if opts.Disassemble {
		if err := listing.WriteFile(opts, program); err != nil {
			return fmt.Errorf("writing disassembly listing: %w", err)
		}
		return nil
	}

	machine := config.CreateMachine(opts, func() {
		logger.Debug("Sound timer expired")
	})
	if err := machine.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	logger.Debug("Program loaded", log.String("file", opts.Input), log.Int("size", len(program)))

	output, err := frontend.New(logger, opts)
	if err != nil {
		return fmt.Errorf("creating frontend: %w", err)
	}

	r := runner.New(logger, machine, opts)
	if err := output.Run(ctx, r); err != nil {
		return fmt.Errorf("running frontend %s: %w", opts.Frontend, err)
	}
	return nil
}

func printBanner(opts options.Program) {
	if !opts.Quiet {
		fmt.Println("[---------------------------------]")
		fmt.Println("[ retrochip8 - CHIP-8 interpreter ]")
		fmt.Printf("[---------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}
