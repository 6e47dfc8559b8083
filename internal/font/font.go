// Package font contains the built-in hexadecimal digit glyphs.
package font

// Glyph layout in interpreter memory.
const (
	// Offset is the memory address of the glyph for digit 0.
	Offset = 0x000
	// GlyphSize is the number of bytes of a single glyph, one byte per row.
	GlyphSize = 5
	// Glyphs is the number of glyphs in the table.
	Glyphs = 16
)

// Table contains the 4x5 pixel glyphs for the digits 0-F.
var Table = [Glyphs * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Address returns the memory address of the glyph for the low nibble of digit.
func Address(digit byte) uint16 {
	return Offset + uint16(digit&0xF)*GlyphSize
}

// Glyph returns the rows of the glyph for the low nibble of digit.
func Glyph(digit byte) []byte {
	start := int(digit&0xF) * GlyphSize
	return Table[start : start+GlyphSize]
}
