package frontend

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// headless runs a program without display and input, which is useful for
// scripted runs in combination with a cycle limit.
type headless struct {
	logger *log.Logger
}

func newHeadless(logger *log.Logger) *headless {
	return &headless{
		logger: logger,
	}
}

// Run executes the program until it halts. Reaching the cycle limit is not
// considered an error. The final framebuffer is logged at debug level.
func (h *headless) Run(ctx context.Context, r *runner.Runner) error {
	err := r.Run(ctx)

	h.logger.Info("Execution stopped", log.Int("cycles", r.Cycles()))
	for _, line := range renderASCII(r.Machine()) {
		h.logger.Debug(line)
	}

	switch {
	case errors.Is(err, runner.ErrCycleLimit), errors.Is(err, context.Canceled):
		return nil
	case err != nil:
		return fmt.Errorf("running program: %w", err)
	default:
		return nil
	}
}
