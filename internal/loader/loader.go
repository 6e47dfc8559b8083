// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/vm"
)

// ErrEmptyROM is returned for ROM files that contain no data.
var ErrEmptyROM = errors.New("ROM file is empty")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file at the given path.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := l.LoadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return rom, nil
}

// LoadFrom reads a raw CHIP-8 program from the reader. Programs that do not
// fit into the program space of the interpreter memory are rejected.
func (l *Loader) LoadFrom(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized programs
	rom, err := io.ReadAll(io.LimitReader(reader, vm.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading ROM data: %w", err)
	}

	switch {
	case len(rom) == 0:
		return nil, ErrEmptyROM
	case len(rom) > vm.MaxROMSize:
		return nil, fmt.Errorf("%w: more than %d bytes", vm.ErrROMTooLarge, vm.MaxROMSize)
	}
	return rom, nil
}
