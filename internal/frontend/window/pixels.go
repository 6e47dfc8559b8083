// Package window implements a desktop window frontend.
package window

import (
	"errors"
	"image/color"

	"github.com/retroenv/retrochip8/internal/display"
)

// ErrUnavailable is returned by Run when the binary was built without
// window support.
var ErrUnavailable = errors.New("window frontend is not available in headless builds")

// Colors of lit and unlit pixels.
var (
	ForegroundColor = color.RGBA{R: 0xE0, G: 0xF0, B: 0xD0, A: 0xFF}
	BackgroundColor = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
)

const bytesPerPixel = 4

// fillPixels writes the frame as RGBA pixels into dst.
func fillPixels(dst []byte, frame *display.Framebuffer) {
	offset := 0
	for y := range display.Height {
		for x := range display.Width {
			c := BackgroundColor
			if frame.Pixel(x, y) {
				c = ForegroundColor
			}
			dst[offset] = c.R
			dst[offset+1] = c.G
			dst[offset+2] = c.B
			dst[offset+3] = c.A
			offset += bytesPerPixel
		}
	}
}
