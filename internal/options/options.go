// Package options contains the program options.
package options

// Frontend names.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendNone     = "none"
)

// Default option values.
const (
	DefaultInstructionsPerSecond = 700
	DefaultScale                 = 10
)

// Parameters contains file and system options.
type Parameters struct {
	Input  string // ROM file to run
	System string // system to run, auto-detected from the file extension if empty
}

// Flags contains behavior options.
type Flags struct {
	Debug bool // enable debug logging
	Quiet bool // only log errors
	Mute  bool // disable the beeper
}

// Emulation contains options that control the interpreter.
type Emulation struct {
	InstructionsPerSecond int      // 0 runs unthrottled
	ScaledFont            bool     // font character points at glyph address instead of register value
	Seed                  uint64   // random number generator seed, 0 picks a time based seed
	Breakpoints           []uint16 // stop when the program counter reaches one of these addresses
	MaxCycles             uint64   // stop after this many instructions, 0 for no limit
	Trace                 bool     // log every executed instruction
}

// Display contains output options.
type Display struct {
	Frontend string
	Scale    int
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	Emulation
	Display
}

// New returns program options with default values.
func New() Program {
	return Program{
		Emulation: Emulation{
			InstructionsPerSecond: DefaultInstructionsPerSecond,
		},
		Display: Display{
			Frontend: FrontendWindow,
			Scale:    DefaultScale,
		},
	}
}
