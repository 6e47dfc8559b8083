package instruction

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Fields(t *testing.T) {
	ins := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), ins.Word)
	assert.Equal(t, uint8(0xD), ins.Op)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0xF), ins.N)
	assert.Equal(t, uint8(0x2F), ins.NN)
	assert.Equal(t, uint16(0x12F), ins.NNN)
	assert.Equal(t, Draw, ins.Kind)
}

//nolint:funlen // table of all opcodes
func TestDecode_Kinds(t *testing.T) {
	tests := []struct {
		word uint16
		kind Kind
	}{
		{0x00E0, ClearScreen},
		{0x00EE, Return},
		{0x0000, Unknown},
		{0x0123, Unknown},
		{0x01E0, Unknown},
		{0x1ABC, Jump},
		{0x2ABC, Call},
		{0x3A12, SkipIfEqualNN},
		{0x4A12, SkipIfNotEqNN},
		{0x5AB0, SkipIfEqualY},
		{0x6A12, SetRegister},
		{0x7A12, AddToRegister},
		{0x8AB0, Set},
		{0x8AB1, Or},
		{0x8AB2, And},
		{0x8AB3, Xor},
		{0x8AB4, Add},
		{0x8AB5, SubtractXY},
		{0x8AB6, ShiftRight},
		{0x8AB7, SubtractYX},
		{0x8ABE, ShiftLeft},
		{0x8AB8, Unknown},
		{0x8ABF, Unknown},
		{0x9AB0, SkipIfNotEqY},
		{0xA123, SetIndex},
		{0xB123, JumpWithOffset},
		{0xCA0F, Random},
		{0xDAB5, Draw},
		{0xEA9E, SkipIfKey},
		{0xEAA1, SkipIfNotKey},
		{0xEA00, Unknown},
		{0xFA07, ReadDelayTimer},
		{0xFA0A, WaitForKey},
		{0xFA15, SetDelayTimer},
		{0xFA18, SetSoundTimer},
		{0xFA1E, AddToIndex},
		{0xFA29, FontCharacter},
		{0xFA33, BCD},
		{0xFA55, Store},
		{0xFA65, Load},
		{0xFAFF, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, Decode(tt.word).Kind)
		})
	}
}

func TestDecode_Total(t *testing.T) {
	seen := make(map[Kind]bool)
	for w := range 0x10000 {
		word := uint16(w)
		first := Decode(word)
		second := Decode(word)

		assert.Equal(t, first, second)
		assert.True(t, first.Kind < kindCount)
		assert.Equal(t, word, first.Word)
		seen[first.Kind] = true
	}

	// every kind is reachable from some word
	assert.Len(t, seen, int(kindCount))
}

func TestKind_String(t *testing.T) {
	for _, k := range Kinds() {
		assert.NotEmpty(t, k.String())
		assert.True(t, k.String() != Unknown.String())
	}
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "kind(200)", Kind(200).String())
	assert.Len(t, Kinds(), 34)
}

func TestInstruction_String(t *testing.T) {
	assert.Equal(t, "jump(0x1ABC)", Decode(0x1ABC).String())
	assert.Equal(t, "unknown(0xFFFF)", Decode(0xFFFF).String())
}

func TestFromBytes(t *testing.T) {
	assert.Equal(t, uint16(0xA2F0), FromBytes(0xA2, 0xF0))
}

func TestMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"clear", 0x00E0, chip8.Cls.Name},
		{"return", 0x00EE, chip8.Ret.Name},
		{"jump", 0x1228, chip8.Jp.Name},
		{"call", 0x2300, chip8.Call.Name},
		{"draw", 0xD015, chip8.Drw.Name},
		{"random", 0xC0FF, chip8.Rnd.Name},
		{"skip key", 0xE09E, chip8.Skp.Name},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mnemonic(tt.word))
		})
	}
}

func TestIsSkip(t *testing.T) {
	assert.True(t, IsSkip(0x3000))
	assert.True(t, IsSkip(0xE0A1))
	assert.False(t, IsSkip(0x1200))
	assert.False(t, IsSkip(0x00E0))
}
