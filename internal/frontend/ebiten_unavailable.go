//go:build headless

package frontend

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

func newEbiten(_ *log.Logger, _ options.Program) (Frontend, error) {
	return nil, errors.New("ebiten frontend is not available in headless builds")
}
