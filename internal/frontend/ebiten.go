//go:build !headless

package frontend

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/font/basicfont"
)

var (
	colorOn      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorOff     = color.RGBA{A: 0xFF}
	colorOverlay = color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF}
)

// ebitenKeys maps the keyboard keys of the keypad layout to ebiten keys.
var ebitenKeys = map[rune]ebiten.Key{
	'1': ebiten.Key1, '2': ebiten.Key2, '3': ebiten.Key3, '4': ebiten.Key4,
	'Q': ebiten.KeyQ, 'W': ebiten.KeyW, 'E': ebiten.KeyE, 'R': ebiten.KeyR,
	'A': ebiten.KeyA, 'S': ebiten.KeyS, 'D': ebiten.KeyD, 'F': ebiten.KeyF,
	'Z': ebiten.KeyZ, 'X': ebiten.KeyX, 'C': ebiten.KeyC, 'V': ebiten.KeyV,
}

// ebitenOutput runs the machine in a window. The ebiten game loop calls
// Update at the frame rate, which executes the cycles of one frame.
type ebitenOutput struct {
	logger *log.Logger
	scale  int
	debug  bool

	ctx    context.Context
	runner *runner.Runner
	screen *ebiten.Image
	pixels []byte
	fault  error
}

func newEbiten(logger *log.Logger, opts options.Program) (Frontend, error) {
	return &ebitenOutput{
		logger: logger,
		scale:  opts.Scale,
		debug:  opts.Debug,
		pixels: make([]byte, chip8.Width*chip8.Height*4),
	}, nil
}

// Run opens the window and blocks until it is closed, the context is
// canceled or escape is pressed. A halted machine keeps the window open
// and shows the fault.
func (eo *ebitenOutput) Run(ctx context.Context, r *runner.Runner) error {
	eo.ctx = ctx
	eo.runner = r

	ebiten.SetWindowSize(chip8.Width*eo.scale, chip8.Height*eo.scale)
	ebiten.SetWindowTitle("retrochip8")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(runner.FrameRate)

	if err := ebiten.RunGame(eo); err != nil {
		return fmt.Errorf("running ebiten game: %w", err)
	}

	if eo.fault != nil {
		return fmt.Errorf("running program: %w", eo.fault)
	}
	return nil
}

// Update implements ebiten.Game.
func (eo *ebitenOutput) Update() error {
	if eo.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if eo.runner.Halted() {
		return nil
	}

	for code, r := range keymap.Layout {
		eo.runner.SetKey(uint8(code), ebiten.IsKeyPressed(ebitenKeys[r]))
	}

	err := eo.runner.Frame()
	switch {
	case errors.Is(err, runner.ErrCycleLimit):
		return ebiten.Termination
	case err != nil:
		eo.fault = err
		eo.logger.Error("Program halted, press escape to quit", log.Err(err))
	}
	return nil
}

// Draw implements ebiten.Game.
func (eo *ebitenOutput) Draw(screen *ebiten.Image) {
	if eo.screen == nil {
		eo.screen = ebiten.NewImage(chip8.Width, chip8.Height)
	}

	machine := eo.runner.Machine()
	for i, set := range machine.Display {
		c := colorOff
		if set {
			c = colorOn
		}
		offset := i * 4
		eo.pixels[offset] = c.R
		eo.pixels[offset+1] = c.G
		eo.pixels[offset+2] = c.B
		eo.pixels[offset+3] = c.A
	}
	eo.screen.WritePixels(eo.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(eo.scale), float64(eo.scale))
	screen.DrawImage(eo.screen, op)

	if eo.fault != nil {
		text.Draw(screen, "HALTED: "+eo.fault.Error(), basicfont.Face7x13, 4, 14, colorOverlay)
	}
	if eo.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f cycles %d",
			ebiten.ActualTPS(), eo.runner.Cycles()), 4, chip8.Height*eo.scale-16)
	}
}

// Layout implements ebiten.Game.
func (eo *ebitenOutput) Layout(_, _ int) (int, int) {
	return chip8.Width * eo.scale, chip8.Height * eo.scale
}
