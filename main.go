// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/runner"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// frontend presents frames and owns the input loop.
type frontend interface {
	runner.Screen
	Run(ctx context.Context, cancel context.CancelFunc) error
}

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, runner.ErrBreakpoint) {
			logger.Info("Execution stopped", log.Err(err))
			return
		}
		logger.Error("Running ROM failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	p := pipeline.New(logger)
	session, err := p.Prepare(opts)
	if err != nil {
		return err
	}

	beeper, closeBeeper := openBeeper(logger, opts)
	defer closeBeeper()

	var fe frontend
	switch opts.Frontend {
	case options.FrontendWindow:
		fe = window.New(logger, session.Keys, opts.Scale, app.WindowTitle(opts.Input))
	case options.FrontendTerminal:
		fe = terminal.New(logger, session.Keys, os.Stdin, os.Stdout)
	default:
		return p.Execute(ctx, session, opts, nil, beeper)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return p.Execute(gctx, session, opts, fe, beeper)
	})

	// the window frontend has to run on the main goroutine
	frontendErr := fe.Run(gctx, cancel)
	return errors.Join(g.Wait(), frontendErr)
}

// openBeeper returns the beeper to use, or nil if sound is muted or no
// audio device is available.
func openBeeper(logger *log.Logger, opts options.Program) (runner.Beeper, func()) {
	if opts.Mute {
		return nil, func() {}
	}

	beeper, err := audio.New()
	if err != nil {
		logger.Warn("Sound output is not available", log.Err(err))
		return nil, func() {}
	}
	return beeper, func() { _ = beeper.Close() }
}
