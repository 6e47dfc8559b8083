// Package terminal implements a text frontend that renders the framebuffer
// with ANSI escape sequences and reads keys from a raw mode terminal.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// HoldDuration is how long a key stays pressed after its last key press
// event. Terminals do not report key releases.
const HoldDuration = 150 * time.Millisecond

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B

	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	resetStyle = "\x1b[0m"
)

// Terminal renders frames to out and feeds key presses read from in into
// the keypad.
type Terminal struct {
	logger *log.Logger
	keys   *keypad.Keypad
	in     io.Reader
	out    io.Writer
	now    func() time.Time

	mu        sync.Mutex
	pressedAt [keypad.Keys]time.Time
	last      string
}

// New returns a terminal frontend.
func New(logger *log.Logger, keys *keypad.Keypad, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger: logger,
		keys:   keys,
		in:     in,
		out:    out,
		now:    time.Now,
	}
}

// Present renders the frame if it changed since the last call and releases
// keys whose hold time has expired.
func (t *Terminal) Present(frame display.Framebuffer) {
	t.releaseExpired()

	screen := Render(&frame)
	t.mu.Lock()
	defer t.mu.Unlock()
	if screen == t.last {
		return
	}
	t.last = screen
	_, _ = io.WriteString(t.out, cursorHome+screen)
}

// Run puts the terminal into raw mode and reads key presses until the
// context is cancelled. Ctrl-C and Escape call cancel.
func (t *Terminal) Run(ctx context.Context, cancel context.CancelFunc) error {
	if file, ok := t.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		restore, err := t.makeRaw(file)
		if err != nil {
			return err
		}
		defer restore()
	}

	_, _ = io.WriteString(t.out, clearAll+hideCursor)
	defer func() {
		_, _ = io.WriteString(t.out, resetStyle+showCursor+"\r\n")
	}()

	go t.readInput(cancel)

	<-ctx.Done()
	return nil
}

func (t *Terminal) makeRaw(file *os.File) (func(), error) {
	fd := int(file.Fd())
	width, height, err := term.GetSize(fd)
	if err == nil && (width < display.Width || height < display.Height) {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("columns", width),
			log.Int("rows", height))
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal to raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, state) }, nil
}

// readInput runs until the input is closed. A read blocked on a terminal
// can not be interrupted, the goroutine ends with the process.
func (t *Terminal) readInput(cancel context.CancelFunc) {
	buf := make([]byte, 64)
	for {
		n, err := t.in.Read(buf)
		for _, b := range buf[:n] {
			if !t.handleByte(b) {
				cancel()
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.logger.Error("Reading terminal input failed", log.Err(err))
			}
			return
		}
	}
}

// handleByte processes a single input byte and returns false if the user
// requested to quit.
func (t *Terminal) handleByte(b byte) bool {
	if b == keyCtrlC || b == keyEscape {
		return false
	}

	index, ok := keypad.FromRune(rune(b))
	if !ok {
		return true
	}

	t.mu.Lock()
	t.pressedAt[index] = t.now()
	t.mu.Unlock()
	t.keys.Press(index)
	return true
}

func (t *Terminal) releaseExpired() {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()
	for index, pressed := range t.pressedAt {
		if pressed.IsZero() || now.Sub(pressed) < HoldDuration {
			continue
		}
		t.pressedAt[index] = time.Time{}
		t.keys.Release(byte(index))
	}
}

// Render returns the frame as text for a raw mode terminal. Every pixel
// is two characters wide to keep the aspect ratio of the display.
func Render(frame *display.Framebuffer) string {
	screen := frame.Render('█', ' ')
	screen = strings.ReplaceAll(screen, "█", "██")
	screen = strings.ReplaceAll(screen, " ", "  ")
	return strings.ReplaceAll(screen, "\n", "\r\n")
}
