package window

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/assert"
)

func TestFillPixels(t *testing.T) {
	frame := display.New()
	frame.Toggle(0, 0)
	frame.Toggle(63, 31)

	dst := make([]byte, display.Width*display.Height*bytesPerPixel)
	fillPixels(dst, frame)

	assert.Equal(t, ForegroundColor.R, dst[0])
	assert.Equal(t, ForegroundColor.A, dst[3])
	// second pixel of the first row is off
	assert.Equal(t, BackgroundColor.R, dst[4])

	last := len(dst) - bytesPerPixel
	assert.Equal(t, ForegroundColor.G, dst[last+1])
	assert.Equal(t, BackgroundColor.B, dst[last-2])
}
