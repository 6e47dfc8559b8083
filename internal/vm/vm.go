// Package vm implements the CHIP-8 execution engine.
//
// The VM owns memory, registers, the program counter, the index register,
// the call stack and the framebuffer. The delay and sound timers are owned
// by a timer.Coordinator and the key state by a keypad.Keypad, the VM only
// accesses them through their methods.
package vm

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout.
//
//	0x000-0x1FF: interpreter area, holds the font glyphs
//	0x200-0xFFF: program space
const (
	MemorySize   = 0x1000
	ProgramStart = 0x200
	MaxAddress   = 0xFFF
	MaxROMSize   = MemorySize - ProgramStart

	Registers = 16
	StackSize = 16

	flag        = 0xF
	addressMask = MaxAddress
)

// Config controls interpreter behavior that differs between CHIP-8
// implementations.
type Config struct {
	// ScaledFont makes the font character instruction point I at the glyph
	// of the low nibble of Vx. By default I is set to the value of Vx.
	ScaledFont bool
	// Seed seeds the random number generator, zero picks a time based seed.
	Seed uint64
	// Trace logs every executed instruction at debug level.
	Trace bool
}

// VM is the CHIP-8 interpreter state.
type VM struct {
	logger *log.Logger
	timers *timer.Coordinator
	keys   *keypad.Keypad
	rng    *rand.Rand
	cfg    Config

	memory  [MemorySize]byte
	v       [Registers]uint8
	i       uint16
	pc      uint16
	stack   [StackSize]uint16
	sp      int
	display display.Framebuffer

	fault  error
	cycles uint64
}

// New returns a reset VM that reads timers and keys from the given
// collaborators.
func New(logger *log.Logger, timers *timer.Coordinator, keys *keypad.Keypad, cfg Config) *VM {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m := &VM{
		logger: logger,
		timers: timers,
		keys:   keys,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		cfg:    cfg,
	}
	m.Reset()
	return m
}

// Reset clears memory, registers, stack, timers and display, installs the
// font and points the program counter at the program start.
func (m *VM) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[font.Offset:], font.Table[:])
	m.v = [Registers]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.display.Clear()
	m.timers.Reset()
	m.fault = nil
	m.cycles = 0
}

// Load resets the VM and copies the ROM to the program start. ROMs that do
// not fit into the program space are rejected and leave the VM untouched.
func (m *VM) Load(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	m.Reset()
	copy(m.memory[ProgramStart:], rom)
	return nil
}

// PC returns the program counter.
func (m *VM) PC() uint16 {
	return m.pc
}

// Cycles returns the number of executed instructions since the last reset.
func (m *VM) Cycles() uint64 {
	return m.cycles
}

// Fault returns the fault that halted the VM, or nil.
func (m *VM) Fault() error {
	return m.fault
}

// Display returns a copy of the framebuffer.
func (m *VM) Display() display.Framebuffer {
	return m.display.Snapshot()
}

// State is a copy of the complete interpreter state.
type State struct {
	Memory [MemorySize]byte
	V      [Registers]uint8
	I      uint16
	PC     uint16
	Stack  []uint16
	Delay  uint8
	Sound  uint8
}

// Snapshot returns a copy of the interpreter state.
func (m *VM) Snapshot() State {
	stack := make([]uint16, m.sp)
	copy(stack, m.stack[:m.sp])

	return State{
		Memory: m.memory,
		V:      m.v,
		I:      m.i,
		PC:     m.pc,
		Stack:  stack,
		Delay:  m.timers.Delay(),
		Sound:  m.timers.Sound(),
	}
}
