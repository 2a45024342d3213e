package frontend

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/runner"
	"golang.org/x/term"
)

// Terminals only report key presses, a pressed key is released after
// this number of frames without a repeated press.
const keyHoldFrames = 6

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B
)

// ANSI escape sequences used for rendering.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

var errTerminalTooSmall = errors.New("terminal is too small")

// terminal renders the framebuffer with unicode half block characters
// and reads key presses from a raw mode stdin.
type terminal struct {
	in  *os.File
	out io.Writer

	held [chip8.KeyCount]int // remaining frames of pressed keys
}

func newTerminal() *terminal {
	return &terminal{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// Run puts the terminal into raw mode and drives the runner until the user
// presses escape or ctrl+c, the context is canceled or the machine halts.
func (t *terminal) Run(ctx context.Context, r *runner.Runner) error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	if width < chip8.Width || height < chip8.Height/2+1 {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			errTerminalTooSmall, width, height, chip8.Width, chip8.Height/2+1)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	defer func() {
		_, _ = io.WriteString(t.out, showCursor+"\r\n")
		_ = term.Restore(fd, oldState)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	input := t.readInput(ctx)

	_, _ = io.WriteString(t.out, clearScreen+hideCursor)
	return t.loop(ctx, r, input)
}

func (t *terminal) loop(ctx context.Context, r *runner.Runner, input <-chan byte) error {
	ticker := time.NewTicker(time.Second / runner.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case b, ok := <-input:
			if !ok || b == keyCtrlC || b == keyEscape {
				return nil
			}
			t.pressKey(r, b)

		case <-ticker.C:
			t.releaseKeys(r)
			err := r.Frame()
			if renderErr := t.render(r); renderErr != nil {
				return renderErr
			}
			if errors.Is(err, runner.ErrCycleLimit) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("running program: %w", err)
			}
		}
	}
}

// readInput reads stdin in a goroutine and sends every byte to the returned
// channel, which is closed when stdin is closed.
func (t *terminal) readInput(ctx context.Context) <-chan byte {
	input := make(chan byte, 16)

	go func() {
		defer close(input)
		reader := bufio.NewReader(t.in)
		for {
			b, err := reader.ReadByte()
			if err != nil {
				return
			}
			select {
			case input <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	return input
}

func (t *terminal) pressKey(r *runner.Runner, b byte) {
	code, ok := keymap.Lookup(rune(b))
	if !ok {
		return
	}
	t.held[code] = keyHoldFrames
	r.SetKey(code, true)
}

func (t *terminal) releaseKeys(r *runner.Runner) {
	for code, frames := range t.held {
		if frames == 0 {
			continue
		}
		t.held[code]--
		if t.held[code] == 0 {
			r.SetKey(uint8(code), false)
		}
	}
}

func (t *terminal) render(r *runner.Runner) error {
	w := bufio.NewWriter(t.out)
	_, _ = w.WriteString(cursorHome)

	for _, line := range renderHalfBlocks(r.Machine()) {
		_, _ = w.WriteString(line)
		_, _ = w.WriteString("\r\n")
	}

	status := fmt.Sprintf("cycles: %d  esc: quit", r.Cycles())
	if err := r.Err(); err != nil && !errors.Is(err, runner.ErrCycleLimit) {
		status = fmt.Sprintf("halted: %v", err)
	}
	_, _ = fmt.Fprintf(w, "%-*s", chip8.Width, status)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}
