// Package frontend contains the display and input collaborators that run
// a program on the interpreter core.
package frontend

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Frontend renders the framebuffer of a running machine and feeds keyboard
// input into its keypad.
type Frontend interface {
	// Run drives the runner until the context is canceled, the user quits
	// or the machine halts.
	Run(ctx context.Context, r *runner.Runner) error
}

// New returns the frontend with the given name.
func New(logger *log.Logger, opts options.Program) (Frontend, error) {
	switch opts.Frontend {
	case options.FrontendEbiten:
		return newEbiten(logger, opts)
	case options.FrontendTerminal:
		return newTerminal(), nil
	case options.FrontendHeadless:
		return newHeadless(logger), nil
	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", opts.Frontend)
	}
}
