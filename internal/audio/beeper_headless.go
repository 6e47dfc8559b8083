//go:build headless

package audio

// Beeper tracks the tone state without playing it.
type Beeper struct {
	*Tone
}

// New returns a silent beeper.
func New() (*Beeper, error) {
	return &Beeper{Tone: NewTone(SampleRate, Frequency)}, nil
}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
