// Package display implements the monochrome CHIP-8 framebuffer.
package display

import "strings"

// Framebuffer dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Framebuffer is a 64x32 grid of one bit pixels, row-major with the
// origin at the top left. It is not safe for concurrent use, hosts
// render from a Snapshot.
type Framebuffer struct {
	rows [Height]uint64 // bit 63 is column 0
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.rows = [Height]uint64{}
}

// Pixel returns whether the pixel at x, y is on. Coordinates outside
// of the grid are reported as off.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.rows[y]&columnMask(x) != 0
}

// Toggle flips the pixel at x, y and returns whether it was on before.
// Coordinates outside of the grid are ignored.
func (f *Framebuffer) Toggle(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	mask := columnMask(x)
	wasOn := f.rows[y]&mask != 0
	f.rows[y] ^= mask
	return wasOn
}

// Lit returns the number of pixels that are on.
func (f *Framebuffer) Lit() int {
	count := 0
	for _, row := range f.rows {
		for ; row != 0; row &= row - 1 {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the current framebuffer.
func (f *Framebuffer) Snapshot() Framebuffer {
	return *f
}

// String renders the framebuffer as text, one line per row.
func (f *Framebuffer) String() string {
	return f.Render('#', ' ')
}

// Render renders the framebuffer as text using the given runes for pixels
// that are on and off.
func (f *Framebuffer) Render(on, off rune) string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range Height {
		for x := range Width {
			if f.Pixel(x, y) {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func columnMask(x int) uint64 {
	return 1 << (Width - 1 - x)
}
