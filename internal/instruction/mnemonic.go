package instruction

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Mnemonic returns the assembler mnemonic of the word as defined by the
// CHIP-8 opcode table, or an empty string for words that match no opcode.
func Mnemonic(word uint16) string {
	ins := lookup(word)
	if ins == nil {
		return ""
	}
	return ins.Name
}

// IsSkip returns whether the word is a conditional skip instruction.
func IsSkip(word uint16) bool {
	ins := lookup(word)
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

func lookup(word uint16) *chip8.Instruction {
	opcodes := chip8.Opcodes[int(word>>12)]
	for _, op := range opcodes {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}
