// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// VM returns the interpreter configuration for the program options.
func VM(opts options.Program) vm.Config {
	return vm.Config{
		ScaledFont: opts.ScaledFont,
		Seed:       opts.Seed,
		Trace:      opts.Trace,
	}
}

// Runner returns the scheduling configuration for the program options.
func Runner(opts options.Program) runner.Config {
	return runner.Config{
		InstructionsPerSecond: opts.InstructionsPerSecond,
		Breakpoints:           opts.Breakpoints,
		MaxCycles:             opts.MaxCycles,
	}
}
