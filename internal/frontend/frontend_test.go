package frontend

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestRunner(t *testing.T, opts options.Program, program ...byte) *runner.Runner {
	t.Helper()

	machine := chip8.New()
	assert.NoError(t, machine.LoadProgram(program))
	return runner.New(log.NewTestLogger(t), machine, opts)
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		frontend string
		wantErr  bool
	}{
		{frontend: options.FrontendTerminal},
		{frontend: options.FrontendHeadless},
		{frontend: "gameboy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.frontend, func(t *testing.T) {
			opts := options.New()
			opts.Frontend = tt.frontend

			f, err := New(logger, opts)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported frontend")
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	machine := chip8.New()
	machine.Display[0] = true                 // (0,0) upper
	machine.Display[chip8.Width+1] = true     // (1,1) lower
	machine.Display[2] = true                 // (2,0) upper
	machine.Display[chip8.Width+2] = true     // (2,1) lower
	machine.Display[31*chip8.Width+63] = true // (63,31) lower of last row

	lines := renderHalfBlocks(machine)
	assert.Equal(t, chip8.Height/2, len(lines))

	first := []rune(lines[0])
	assert.Equal(t, chip8.Width, len(first))
	assert.Equal(t, '▀', first[0])
	assert.Equal(t, '▄', first[1])
	assert.Equal(t, '█', first[2])
	assert.Equal(t, ' ', first[3])

	last := []rune(lines[len(lines)-1])
	assert.Equal(t, '▄', last[chip8.Width-1])
}

func TestRenderASCII(t *testing.T) {
	machine := chip8.New()
	machine.Display[chip8.Width+3] = true

	lines := renderASCII(machine)
	assert.Equal(t, chip8.Height, len(lines))
	assert.Equal(t, strings.Repeat(".", chip8.Width), lines[0])
	assert.Equal(t, "...#", lines[1][:4])
}

func TestTerminalKeys(t *testing.T) {
	r := newTestRunner(t, options.New(), 0x12, 0x00)
	term := &terminal{}

	term.pressKey(r, 'w') // keypad key 5
	assert.True(t, r.Machine().Keys[0x5])
	term.pressKey(r, 'p') // not mapped
	assert.Equal(t, 0, term.held[0x0])

	for range keyHoldFrames - 1 {
		term.releaseKeys(r)
	}
	assert.True(t, r.Machine().Keys[0x5])

	term.releaseKeys(r)
	assert.False(t, r.Machine().Keys[0x5])
	assert.Equal(t, 0, term.held[0x5])
}

func TestTerminalLoop(t *testing.T) {
	t.Run("quits on escape", func(t *testing.T) {
		r := newTestRunner(t, options.New(), 0x12, 0x00)
		var buf bytes.Buffer
		term := &terminal{out: &buf}

		input := make(chan byte, 1)
		input <- keyEscape
		assert.NoError(t, term.loop(context.Background(), r, input))
	})

	t.Run("stops at cycle limit", func(t *testing.T) {
		opts := options.New()
		opts.Cycles = 5
		r := newTestRunner(t, opts, 0x12, 0x00)
		var buf bytes.Buffer
		term := &terminal{out: &buf}

		assert.NoError(t, term.loop(context.Background(), r, nil))
		assert.Equal(t, 5, r.Cycles())
		assert.Contains(t, buf.String(), cursorHome)
		assert.Contains(t, buf.String(), "cycles: 5")
	})

	t.Run("returns fault", func(t *testing.T) {
		r := newTestRunner(t, options.New(), 0x00, 0xEE)
		var buf bytes.Buffer
		term := &terminal{out: &buf}

		err := term.loop(context.Background(), r, nil)
		assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
		assert.Contains(t, buf.String(), "halted:")
	})
}

func TestHeadlessRun(t *testing.T) {
	t.Run("cycle limit is not an error", func(t *testing.T) {
		opts := options.New()
		opts.Cycles = 20
		r := newTestRunner(t, opts,
			0xA0, 0x00, // ld I, $000
			0xD0, 0x05, // drw V0, V0, $5
			0x12, 0x04, // jp $204 (loops on itself)
		)

		h := newHeadless(log.NewTestLogger(t))
		assert.NoError(t, h.Run(context.Background(), r))
		assert.Equal(t, 20, r.Cycles())
		assert.True(t, r.Machine().Pixel(0, 0))
	})

	t.Run("canceled context is not an error", func(t *testing.T) {
		r := newTestRunner(t, options.New(), 0x12, 0x00)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		h := newHeadless(log.NewTestLogger(t))
		assert.NoError(t, h.Run(ctx, r))
	})

	t.Run("fault is returned", func(t *testing.T) {
		r := newTestRunner(t, options.New(), 0xFF, 0xFF)

		h := newHeadless(log.NewTestLogger(t))
		err := h.Run(context.Background(), r)
		assert.True(t, errors.Is(err, chip8.ErrInvalidOpcode))
	})
}
