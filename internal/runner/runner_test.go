package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fakeScreen struct {
	frames int
	last   display.Framebuffer
}

func (s *fakeScreen) Present(frame display.Framebuffer) {
	s.frames++
	s.last = frame
}

type fakeBeeper struct {
	changes []bool
}

func (b *fakeBeeper) SetTone(on bool) {
	b.changes = append(b.changes, on)
}

func newMachine(t *testing.T, program ...uint16) (*vm.VM, *timer.Coordinator) {
	t.Helper()

	rom := make([]byte, 0, len(program)*2)
	for _, word := range program {
		rom = append(rom, byte(word>>8), byte(word))
	}

	timers := timer.New()
	m := vm.New(log.NewTestLogger(t), timers, keypad.New(), vm.Config{Seed: 1})
	assert.NoError(t, m.Load(rom))
	return m, timers
}

func TestRun_MaxCyclesUnthrottled(t *testing.T) {
	m, timers := newMachine(t, 0x1200)
	screen := &fakeScreen{}
	r := New(log.NewTestLogger(t), m, timers, screen, nil, Config{MaxCycles: 5000})

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	assert.NoError(t, r.Run(ctx))
	assert.Equal(t, uint64(5000), m.Cycles())
	assert.True(t, screen.frames > 0)
}

func TestRun_MaxCyclesPaced(t *testing.T) {
	m, timers := newMachine(t, 0x1200)
	r := New(log.NewTestLogger(t), m, timers, nil, nil, Config{
		InstructionsPerSecond: 600,
		MaxCycles:             25,
	})

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()
	assert.NoError(t, r.Run(ctx))
	assert.Equal(t, uint64(25), m.Cycles())
	// 10 instructions per frame need at least 3 frames
	assert.True(t, time.Since(start) >= 2*timer.Interval)
}

func TestRun_Breakpoint(t *testing.T) {
	m, timers := newMachine(t, 0x6001, 0x6102, 0x1204)
	r := New(log.NewTestLogger(t), m, timers, nil, nil, Config{Breakpoints: []uint16{0x204}})

	err := r.Run(t.Context())
	assert.True(t, errors.Is(err, ErrBreakpoint))
	assert.ErrorContains(t, err, "0x0204")
	assert.Equal(t, uint16(0x204), m.PC())
	assert.Equal(t, uint64(2), m.Cycles())
}

func TestRun_Fault(t *testing.T) {
	m, timers := newMachine(t, 0x6001, 0xF0FF)
	r := New(log.NewTestLogger(t), m, timers, nil, nil, Config{})

	err := r.Run(t.Context())
	var fault *vm.Fault
	assert.True(t, errors.As(err, &fault))
	assert.True(t, errors.Is(err, vm.ErrUnknownOpcode))
	assert.Equal(t, uint16(0x202), fault.PC)
}

func TestRun_Cancel(t *testing.T) {
	m, timers := newMachine(t, 0x1200)
	screen := &fakeScreen{}
	r := New(log.NewTestLogger(t), m, timers, screen, nil, Config{InstructionsPerSecond: 700})

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, r.Run(ctx))
	assert.True(t, screen.frames > 0)
	assert.True(t, m.Cycles() > 0)
}

func TestRun_PresentsFrames(t *testing.T) {
	// draw the glyph for 0 and loop
	m, timers := newMachine(t, 0xA000, 0xD005, 0x1204)
	screen := &fakeScreen{}
	r := New(log.NewTestLogger(t), m, timers, screen, nil, Config{MaxCycles: 10})

	assert.NoError(t, r.Run(t.Context()))
	assert.Equal(t, 14, screen.last.Lit())
}

func TestRun_Tone(t *testing.T) {
	// set the sound timer to 2 and loop
	m, timers := newMachine(t, 0x6002, 0xF018, 0x1204)
	beeper := &fakeBeeper{}
	r := New(log.NewTestLogger(t), m, timers, nil, beeper, Config{InstructionsPerSecond: 600})

	ctx, cancel := context.WithTimeout(t.Context(), 300*time.Millisecond)
	defer cancel()

	assert.NoError(t, r.Run(ctx))
	assert.Equal(t, []bool{true, false}, beeper.changes)
	assert.Equal(t, uint8(0), timers.Sound())
}

func TestFrameBudget(t *testing.T) {
	r := New(log.NewTestLogger(t), nil, timer.New(), nil, nil, Config{InstructionsPerSecond: 700})

	total := 0
	for range timer.Rate {
		n := r.frameBudget()
		assert.True(t, n == 11 || n == 12)
		total += n
	}
	assert.Equal(t, 700, total)
}
