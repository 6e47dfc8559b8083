package vm

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrogolib/assert"
)

func TestDraw_Glyph(t *testing.T) {
	// draw the glyph for 0 at 1, 2
	m := newTestVM(t, Config{}, 0x6001, 0x6102, 0xA000, 0xD015)
	steps(t, m, 4)

	fb := m.Display()
	for row, bits := range font.Glyph(0) {
		for col := range 8 {
			expected := bits&(0x80>>col) != 0
			assert.Equal(t, expected, fb.Pixel(1+col, 2+row))
		}
	}
	assert.Equal(t, 14, fb.Lit())
	assert.Equal(t, uint8(0), m.v[flag])
}

func TestDraw_ClipsRightEdge(t *testing.T) {
	m := newTestVM(t, Config{}, 0x603C, 0x6100, 0xA300, 0xD011)
	m.memory[0x300] = 0xFF
	steps(t, m, 4)

	fb := m.Display()
	assert.Equal(t, 4, fb.Lit())
	for x := 60; x < display.Width; x++ {
		assert.True(t, fb.Pixel(x, 0))
	}
	// no wraparound to the left side
	for x := range 4 {
		assert.False(t, fb.Pixel(x, 0))
		assert.False(t, fb.Pixel(x, 1))
	}
}

func TestDraw_ClipsBottomEdge(t *testing.T) {
	m := newTestVM(t, Config{}, 0x6000, 0x611E, 0xA300, 0xD014)
	copy(m.memory[0x300:], []byte{0x80, 0x80, 0x80, 0x80})
	steps(t, m, 4)

	fb := m.Display()
	assert.Equal(t, 2, fb.Lit())
	assert.True(t, fb.Pixel(0, 30))
	assert.True(t, fb.Pixel(0, 31))
	assert.False(t, fb.Pixel(0, 0))
	assert.False(t, fb.Pixel(0, 1))
}

func TestDraw_StartPositionWraps(t *testing.T) {
	// x = 65 mod 64 = 1, y = 33 mod 32 = 1
	m := newTestVM(t, Config{}, 0x6041, 0x6121, 0xA300, 0xD011)
	m.memory[0x300] = 0x80
	steps(t, m, 4)

	fb := m.Display()
	assert.True(t, fb.Pixel(1, 1))
	assert.Equal(t, 1, fb.Lit())
}

func TestDraw_Collision(t *testing.T) {
	m := newTestVM(t, Config{}, 0xA300, 0xD011, 0xD011)
	m.memory[0x300] = 0xC0
	steps(t, m, 2)
	assert.Equal(t, uint8(0), m.v[flag])
	assert.Equal(t, 2, m.display.Lit())

	// drawing the same sprite again erases it and reports the collision
	steps(t, m, 1)
	assert.Equal(t, uint8(1), m.v[flag])
	assert.Equal(t, 0, m.display.Lit())
}

func TestDraw_CollisionIsCumulative(t *testing.T) {
	// first row collides, second row does not
	m := newTestVM(t, Config{}, 0xA300, 0xD011, 0xA302, 0xD012)
	copy(m.memory[0x300:], []byte{0x80, 0x00, 0x80, 0x40})
	steps(t, m, 4)

	assert.Equal(t, uint8(1), m.v[flag])
	assert.False(t, m.display.Pixel(0, 0))
	assert.True(t, m.display.Pixel(1, 1))
}

func TestDraw_ResetsFlag(t *testing.T) {
	m := newTestVM(t, Config{}, 0x6FFF, 0xA300, 0xD011)
	m.memory[0x300] = 0x80
	steps(t, m, 3)

	assert.Equal(t, uint8(0), m.v[flag])
}

func TestDraw_ZeroHeight(t *testing.T) {
	m := newTestVM(t, Config{}, 0x6F01, 0xA300, 0xD010)
	m.memory[0x300] = 0xFF
	steps(t, m, 3)

	assert.Equal(t, 0, m.display.Lit())
	assert.Equal(t, uint8(0), m.v[flag])
}

func TestClearScreen(t *testing.T) {
	m := newTestVM(t, Config{}, 0xA000, 0xD005, 0x00E0)
	steps(t, m, 2)
	assert.True(t, m.display.Lit() > 0)

	steps(t, m, 1)
	assert.Equal(t, 0, m.display.Lit())
}
