// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	var breakpoints string
	readOptionFlags(flags, &opts, &breakpoints)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	opts.Breakpoints, err = parseAddresses(breakpoints)
	if err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	opts.System = strings.ToLower(opts.System)

	if opts.InstructionsPerSecond < 0 {
		return fmt.Errorf("invalid instructions per second %d, must not be negative", opts.InstructionsPerSecond)
	}
	if opts.Scale < 1 || opts.Scale > 50 {
		return fmt.Errorf("invalid scale %d, must be between 1 and 50", opts.Scale)
	}
	if opts.Quiet {
		opts.Trace = false
	}
	if opts.Trace {
		opts.Debug = true
	}

	validFrontends := []string{options.FrontendWindow, options.FrontendTerminal, options.FrontendNone}
	for _, valid := range validFrontends {
		if opts.Frontend == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(validFrontends, ", "))
}

// parseAddresses parses a comma separated list of addresses. Addresses
// can be given in decimal or with a 0x prefix in hexadecimal.
func parseAddresses(s string) ([]uint16, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var addresses []uint16
	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		value, err := strconv.ParseUint(field, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("parsing breakpoint address '%s': %w", field, err)
		}
		if value > 0xFFF {
			return nil, fmt.Errorf("breakpoint address '%s' is outside of memory", field)
		}
		addresses = append(addresses, uint16(value))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, breakpoints *string) {
	flags.StringVar(&opts.System, "s", "", "system of the ROM file (chip8) - if not auto-detected from file extension")
	flags.IntVar(&opts.InstructionsPerSecond, "ips", opts.InstructionsPerSecond, "instructions to execute per second, 0 runs unthrottled")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window pixel scale factor")
	flags.StringVar(&opts.Frontend, "frontend", opts.Frontend, "frontend to use (window/terminal/none)")
	flags.BoolVar(&opts.ScaledFont, "font-quirk", false, "font character instruction points I at the glyph of Vx instead of the value of Vx")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number generator, 0 picks a random seed")
	flags.StringVar(breakpoints, "break", "", "comma separated list of addresses to stop execution at, for example 0x2A0,0x2B4")
	flags.Uint64Var(&opts.MaxCycles, "cycles", 0, "stop after executing this many instructions, 0 for no limit")
	flags.BoolVar(&opts.Mute, "mute", false, "disable sound output")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
