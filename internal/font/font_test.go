package font

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestAddress(t *testing.T) {
	assert.Equal(t, uint16(Offset), Address(0))
	assert.Equal(t, uint16(Offset+5*0xA), Address(0xA))
	// only the low nibble selects the glyph
	assert.Equal(t, Address(0x3), Address(0x13))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, Glyphs*GlyphSize, len(Table))
	assert.Equal(t, []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}, Glyph(0xF))
	assert.Equal(t, Glyph(0x1), Glyph(0x21))
}
