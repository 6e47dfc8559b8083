// Package audio plays the tone of the sound timer.
package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Tone parameters.
const (
	SampleRate = 44100
	Frequency  = 440
	Volume     = 0.2

	bytesPerSample = 4
)

// Tone is an io.Reader that produces a mono square wave as 32 bit little
// endian float samples while it is switched on and silence otherwise.
type Tone struct {
	on     atomic.Bool
	period int
	phase  int
}

// NewTone returns a switched off tone.
func NewTone(sampleRate, frequency int) *Tone {
	return &Tone{
		period: max(sampleRate/frequency, 2),
	}
}

// SetTone switches the tone on or off. It is safe to call concurrently
// with Read.
func (t *Tone) SetTone(on bool) {
	t.on.Store(on)
}

// On returns whether the tone is switched on.
func (t *Tone) On() bool {
	return t.on.Load()
}

// Read fills p with whole samples.
func (t *Tone) Read(p []byte) (int, error) {
	on := t.on.Load()
	n := len(p) / bytesPerSample * bytesPerSample

	for offset := 0; offset < n; offset += bytesPerSample {
		var sample float32
		if on {
			sample = Volume
			if t.phase >= t.period/2 {
				sample = -Volume
			}
		}
		binary.LittleEndian.PutUint32(p[offset:], math.Float32bits(sample))
		t.phase = (t.phase + 1) % t.period
	}
	return n, nil
}
