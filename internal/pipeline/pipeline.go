// Package pipeline orchestrates the stages of running a ROM.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates loading and running a ROM.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// Session holds the components of a loaded ROM. The keypad is shared with
// the frontend.
type Session struct {
	Keys    *keypad.Keypad
	Timers  *timer.Coordinator
	Machine *vm.VM
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Prepare detects the system of the input file, loads the ROM and creates
// the interpreter for it.
func (p *Pipeline) Prepare(opts options.Program) (*Session, error) {
	system := p.detector.Detect(opts)
	if err := p.detector.Validate(system); err != nil {
		return nil, fmt.Errorf("detecting system: %w", err)
	}

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return p.PrepareROM(opts, rom)
}

// PrepareROM creates the interpreter for a ROM that is already in memory.
func (p *Pipeline) PrepareROM(opts options.Program, rom []byte) (*Session, error) {
	session := &Session{
		Keys:   keypad.New(),
		Timers: timer.New(),
	}
	session.Machine = vm.New(p.logger, session.Timers, session.Keys, config.VM(opts))

	if err := session.Machine.Load(rom); err != nil {
		return nil, fmt.Errorf("loading ROM into memory: %w", err)
	}

	app.PrintInfo(p.logger, opts, len(rom))
	return session, nil
}

// Execute runs the session until the context is cancelled or execution
// stops. Screen and beeper are optional.
func (p *Pipeline) Execute(ctx context.Context, session *Session, opts options.Program,
	screen runner.Screen, beeper runner.Beeper) error {

	r := runner.New(p.logger, session.Machine, session.Timers, screen, beeper, config.Runner(opts))
	err := r.Run(ctx)

	var fault *vm.Fault
	if errors.As(err, &fault) || errors.Is(err, runner.ErrBreakpoint) {
		p.logState(session.Machine)
	}

	p.logger.Debug("Execution finished", log.Uint64("cycles", session.Machine.Cycles()))
	return err
}

// logState prints the interpreter registers.
func (p *Pipeline) logState(machine *vm.VM) {
	state := machine.Snapshot()
	p.logger.Info("Interpreter state",
		log.Hex("pc", state.PC),
		log.Hex("i", state.I),
		log.String("v", fmt.Sprintf("% X", state.V[:])),
		log.String("stack", fmt.Sprintf("%X", state.Stack)),
		log.Uint8("delay", state.Delay),
		log.Uint8("sound", state.Sound),
	)
}
