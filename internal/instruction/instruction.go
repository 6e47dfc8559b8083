// Package instruction decodes CHIP-8 instruction words.
package instruction

import "fmt"

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

// Instruction is a decoded instruction word. It is a plain value and
// never changes after decoding.
type Instruction struct {
	Word uint16
	Kind Kind

	Op  uint8  // top nibble
	X   uint8  // second nibble, register index
	Y   uint8  // third nibble, register index
	N   uint8  // low nibble
	NN  uint8  // low byte
	NNN uint16 // low 12 bits, address
}

// String returns the kind name and raw word of the instruction.
func (i Instruction) String() string {
	return fmt.Sprintf("%s(0x%04X)", i.Kind, i.Word)
}

// FromBytes combines two big-endian bytes into an instruction word.
func FromBytes(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Decode splits the word into its fields and resolves its kind.
// It is total over all words, unmatched words resolve to Unknown.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		Op:   uint8(word >> 12),
		X:    uint8(word>>8) & 0xF,
		Y:    uint8(word>>4) & 0xF,
		N:    uint8(word) & 0xF,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	ins.Kind = resolve(ins)
	return ins
}

func resolve(ins Instruction) Kind {
	switch ins.Op {
	case 0x0:
		switch ins.NNN {
		case 0x0E0:
			return ClearScreen
		case 0x0EE:
			return Return
		}
		return Unknown
	case 0x1:
		return Jump
	case 0x2:
		return Call
	case 0x3:
		return SkipIfEqualNN
	case 0x4:
		return SkipIfNotEqNN
	case 0x5:
		return SkipIfEqualY
	case 0x6:
		return SetRegister
	case 0x7:
		return AddToRegister
	case 0x8:
		return resolveArithmetic(ins.N)
	case 0x9:
		return SkipIfNotEqY
	case 0xA:
		return SetIndex
	case 0xB:
		return JumpWithOffset
	case 0xC:
		return Random
	case 0xD:
		return Draw
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return SkipIfKey
		case 0xA1:
			return SkipIfNotKey
		}
		return Unknown
	case 0xF:
		return resolveMisc(ins.NN)
	}
	return Unknown
}

// resolveArithmetic resolves the 8XYN register operations by N.
func resolveArithmetic(n uint8) Kind {
	switch n {
	case 0x0:
		return Set
	case 0x1:
		return Or
	case 0x2:
		return And
	case 0x3:
		return Xor
	case 0x4:
		return Add
	case 0x5:
		return SubtractXY
	case 0x6:
		return ShiftRight
	case 0x7:
		return SubtractYX
	case 0xE:
		return ShiftLeft
	}
	return Unknown
}

// resolveMisc resolves the FXNN timer, key and memory operations by NN.
func resolveMisc(nn uint8) Kind {
	switch nn {
	case 0x07:
		return ReadDelayTimer
	case 0x0A:
		return WaitForKey
	case 0x15:
		return SetDelayTimer
	case 0x18:
		return SetSoundTimer
	case 0x1E:
		return AddToIndex
	case 0x29:
		return FontCharacter
	case 0x33:
		return BCD
	case 0x55:
		return Store
	case 0x65:
		return Load
	}
	return Unknown
}
