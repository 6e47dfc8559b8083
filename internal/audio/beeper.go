//go:build !headless

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Beeper plays the tone on the default audio device.
type Beeper struct {
	*Tone

	ctx    *oto.Context
	player *oto.Player
}

// New opens the audio device and starts playback of a switched off tone.
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{
		Tone: NewTone(SampleRate, Frequency),
		ctx:  ctx,
	}
	b.player = ctx.NewPlayer(b.Tone)
	b.player.Play()
	return b, nil
}

// Close stops playback.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
