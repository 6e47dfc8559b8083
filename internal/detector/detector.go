// Package detector handles system architecture detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system architecture detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture from options or file auto-detection.
// It first checks if a system is explicitly specified in options, otherwise
// attempts to detect the system from the input filename extension.
func (d *Detector) Detect(opts options.Program) arch.System {
	system, _ := arch.SystemFromString(opts.System)
	if system == "" {
		system = d.detectFromFile(opts.Input)
		d.logger.Debug("Auto-detected system",
			log.Stringer("system", system),
			log.String("file", opts.Input))
	}
	return system
}

// Validate returns an error if the system can not be run by this interpreter.
func (d *Detector) Validate(system arch.System) error {
	if system != arch.CHIP8System {
		return fmt.Errorf("unsupported system '%s', only %s ROMs can be run", system, arch.CHIP8System)
	}
	return nil
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		// CHIP-8 programs are commonly distributed as .ch8, .c8 or .rom
		// files, but raw dumps come with any extension
		return arch.CHIP8System
	}
}
