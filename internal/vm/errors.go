package vm

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// Errors returned by the interpreter. Runtime errors are wrapped in a Fault.
var (
	ErrUnknownOpcode  = errors.New("unknown opcode")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrPCOutOfBounds  = errors.New("program counter out of bounds")
	ErrPCMisaligned   = errors.New("program counter not aligned to an instruction boundary")
	ErrROMTooLarge    = errors.New("rom too large")
)

// Fault is a fatal runtime error. It records the address and word of the
// instruction that failed. A VM that returned a fault does not advance.
type Fault struct {
	PC   uint16
	Word uint16
	Kind instruction.Kind
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at 0x%04X (instruction 0x%04X)", f.Err, f.PC, f.Word)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
