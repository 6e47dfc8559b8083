// Package runner schedules the execution of the interpreter. It paces
// instruction execution, runs the timer coordinator and forwards frames
// and tone changes to the frontend.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
	"golang.org/x/sync/errgroup"
)

// ErrBreakpoint is returned when execution reaches a breakpoint address.
var ErrBreakpoint = errors.New("breakpoint reached")

// unthrottledBatch is the number of instructions executed between context
// checks when no instruction rate is set.
const unthrottledBatch = 1000

// Machine is the interpreter driven by the runner.
type Machine interface {
	Step() error
	PC() uint16
	Cycles() uint64
	Display() display.Framebuffer
}

// Screen presents frames to the user.
type Screen interface {
	Present(frame display.Framebuffer)
}

// Beeper plays a tone while the sound timer is active.
type Beeper interface {
	SetTone(on bool)
}

// Config controls the execution schedule.
type Config struct {
	InstructionsPerSecond int      // 0 runs unthrottled
	Breakpoints           []uint16 // program counter values that stop execution
	MaxCycles             uint64   // stop after this many instructions, 0 for no limit
}

// Runner executes a machine until it faults, hits a stop condition or the
// context is cancelled.
type Runner struct {
	logger  *log.Logger
	machine Machine
	timers  *timer.Coordinator
	screen  Screen
	beeper  Beeper
	cfg     Config

	breakpoints set.Set[uint16]
	budget      int
	tone        bool
}

// New returns a runner for the machine. Screen and beeper are optional.
func New(logger *log.Logger, machine Machine, timers *timer.Coordinator, screen Screen, beeper Beeper, cfg Config) *Runner {
	breakpoints := set.New[uint16]()
	for _, address := range cfg.Breakpoints {
		breakpoints.Add(address)
	}

	return &Runner{
		logger:      logger,
		machine:     machine,
		timers:      timers,
		screen:      screen,
		beeper:      beeper,
		cfg:         cfg,
		breakpoints: breakpoints,
	}
}

// Run executes the machine and the 60 Hz timer coordinator concurrently.
// It returns nil when the context is cancelled or the cycle limit is
// reached, the fault of the machine or an error wrapping ErrBreakpoint.
// The timer coordinator has stopped when Run returns.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.timers.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		defer r.setTone(false)
		return r.loop(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func (r *Runner) loop(ctx context.Context) error {
	ticker := time.NewTicker(timer.Interval)
	defer ticker.Stop()

	for {
		var limit int
		if r.cfg.InstructionsPerSecond > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			limit = r.frameBudget()
		} else {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			limit = unthrottledBatch
		}

		done, err := r.execute(limit)
		if r.cfg.InstructionsPerSecond > 0 || done || err != nil {
			r.present()
		} else {
			select {
			case <-ticker.C:
				r.present()
			default:
			}
		}
		if err != nil || done {
			return err
		}
	}
}

// frameBudget returns the number of instructions to execute in the current
// frame. The remainder of the division is carried over so that the average
// rate matches the configured rate.
func (r *Runner) frameBudget() int {
	r.budget += r.cfg.InstructionsPerSecond
	n := r.budget / timer.Rate
	r.budget %= timer.Rate
	return n
}

// execute runs up to limit instructions and reports whether the cycle
// limit was reached.
func (r *Runner) execute(limit int) (bool, error) {
	for range limit {
		if r.cfg.MaxCycles > 0 && r.machine.Cycles() >= r.cfg.MaxCycles {
			r.logger.Info("Cycle limit reached", log.Uint64("cycles", r.machine.Cycles()))
			return true, nil
		}

		pc := r.machine.PC()
		if r.breakpoints.Contains(pc) {
			r.logger.Debug("Breakpoint hit", log.Hex("pc", pc))
			return false, fmt.Errorf("%w at 0x%04X", ErrBreakpoint, pc)
		}

		if err := r.machine.Step(); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (r *Runner) present() {
	if r.screen != nil {
		r.screen.Present(r.machine.Display())
	}
	r.setTone(r.timers.Sound() > 0)
}

func (r *Runner) setTone(on bool) {
	if r.beeper == nil || on == r.tone {
		return
	}
	r.tone = on
	r.beeper.SetTone(on)
}
