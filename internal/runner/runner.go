// Package runner drives the interpreter core with a frame clock.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second that the frontends render.
const FrameRate = 60

// ErrCycleLimit is returned when the configured number of cycles was executed.
var ErrCycleLimit = errors.New("cycle limit reached")

// Runner executes the interpreter cycles of a frame. The number of cycles
// per frame varies so that exactly the configured speed is executed over
// every FrameRate frames.
// All methods have to be called from the same goroutine.
type Runner struct {
	logger  *log.Logger
	machine *chip8.Chip8

	speed         int // cycles per second
	maxCycles     int
	trace         bool
	frameInterval time.Duration

	budget int // speed units carried over to the next frame, below FrameRate
	cycles int
	err    error // fault that halted the machine
}

// New returns a runner for the machine configured by the program options.
func New(logger *log.Logger, machine *chip8.Chip8, opts options.Program) *Runner {
	return &Runner{
		logger:         logger,
		machine:        machine,
		speed:         max(1, opts.Speed),
		maxCycles:     opts.Cycles,
		trace:         opts.Trace,
		frameInterval: time.Second / FrameRate,
	}
}

// Machine returns the machine that the runner executes.
func (r *Runner) Machine() *chip8.Chip8 {
	return r.machine
}

// Cycles returns the number of executed cycles.
func (r *Runner) Cycles() int {
	return r.cycles
}

// Err returns the error that halted the machine, if any.
func (r *Runner) Err() error {
	return r.err
}

// Halted returns whether the machine stopped executing because of a fault
// or because the cycle limit was reached.
func (r *Runner) Halted() bool {
	return r.err != nil
}

// SetKey forwards a keypad key state to the machine.
func (r *Runner) SetKey(key uint8, pressed bool) {
	r.machine.SetKey(key, pressed)
}

// Frame executes the cycles of one frame. Once the machine is halted, no
// more cycles are executed and the halting error is returned.
func (r *Runner) Frame() error {
	if r.err != nil {
		return r.err
	}

	r.budget += r.speed
	cycles := r.budget / FrameRate
	r.budget %= FrameRate

	for range cycles {
		if err := r.step(); err != nil {
			return err
		}
	}
	return nil
}

// Run executes frames at the frame rate until the context is canceled or
// the machine halts.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.Frame(); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) step() error {
	if r.err != nil {
		return r.err
	}
	if r.maxCycles > 0 && r.cycles >= r.maxCycles {
		r.err = ErrCycleLimit
		r.logger.Debug("Cycle limit reached", log.Int("cycles", r.cycles))
		return r.err
	}

	pc := r.machine.PC
	if r.trace {
		opcode := r.machine.Opcode()
		r.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", opcode),
			log.String("instruction", chip8.Disassemble(opcode)))
	}

	if err := r.machine.Step(); err != nil {
		r.err = fmt.Errorf("executing cycle %d: %w", r.cycles, err)
		r.logger.Error("Program halted",
			log.Hex("pc", pc),
			log.Int("cycles", r.cycles),
			log.Err(err))
		return r.err
	}

	r.cycles++
	return nil
}
