// Package app provides the application helpers for the interpreter.
package app

import (
	"path/filepath"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the application.
const Name = "retrochip8"

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name, log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints information about the ROM that is about to run.
func PrintInfo(logger *log.Logger, opts options.Program, romSize int) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", romSize),
		log.String("frontend", opts.Frontend),
	)
	if opts.InstructionsPerSecond == 0 {
		logger.Warn("Instruction rate is not limited, programs will run faster than on real hardware")
	}
}

// WindowTitle returns the title of the window for the ROM file.
func WindowTitle(input string) string {
	return Name + " - " + filepath.Base(input)
}
