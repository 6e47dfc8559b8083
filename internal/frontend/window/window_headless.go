//go:build headless

package window

import (
	"context"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// Window is unavailable in headless builds.
type Window struct{}

// New returns a window that fails to run.
func New(_ *log.Logger, _ *keypad.Keypad, _ int, _ string) *Window {
	return &Window{}
}

// Present discards the frame.
func (w *Window) Present(display.Framebuffer) {}

// Run returns ErrUnavailable.
func (w *Window) Run(_ context.Context, cancel context.CancelFunc) error {
	cancel()
	return ErrUnavailable
}
