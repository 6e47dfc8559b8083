//go:build !headless

package window

import (
	"context"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

// hostKeys holds the keyboard key for each keypad index, in the order of
// keypad.Layout.
var hostKeys = [keypad.Keys]ebiten.Key{
	ebiten.KeyX, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyA,
	ebiten.KeyS, ebiten.KeyD, ebiten.KeyZ, ebiten.KeyC,
	ebiten.KeyDigit4, ebiten.KeyR, ebiten.KeyF, ebiten.KeyV,
}

// Window shows the framebuffer in a desktop window and feeds keyboard
// input into the keypad.
type Window struct {
	logger *log.Logger
	keys   *keypad.Keypad
	scale  int
	title  string

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	frame  display.Framebuffer
	pixels []byte
	image  *ebiten.Image
}

// New returns a window that writes key state to keys.
func New(logger *log.Logger, keys *keypad.Keypad, scale int, title string) *Window {
	return &Window{
		logger: logger,
		keys:   keys,
		scale:  scale,
		title:  title,
		pixels: make([]byte, display.Width*display.Height*bytesPerPixel),
	}
}

// Present stores the frame to show on the next draw. It is safe to call
// from any goroutine.
func (w *Window) Present(frame display.Framebuffer) {
	w.mu.Lock()
	w.frame = frame
	w.mu.Unlock()
}

// Run opens the window and blocks until it is closed or the context is
// cancelled. It has to be called from the main goroutine. Closing the
// window calls cancel.
func (w *Window) Run(ctx context.Context, cancel context.CancelFunc) error {
	defer cancel()
	w.ctx = ctx
	w.cancel = cancel

	ebiten.SetWindowSize(display.Width*w.scale, display.Height*w.scale)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetRunnableOnUnfocused(true)

	w.logger.Debug("Opening window", log.Int("scale", w.scale))
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		w.cancel()
		return ebiten.Termination
	}

	var state keypad.State
	for index, key := range hostKeys {
		state[index] = ebiten.IsKeyPressed(key)
	}
	w.keys.Set(state)
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(display.Width, display.Height)
	}

	w.mu.Lock()
	fillPixels(w.pixels, &w.frame)
	w.mu.Unlock()

	w.image.WritePixels(w.pixels)
	screen.DrawImage(w.image, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}
