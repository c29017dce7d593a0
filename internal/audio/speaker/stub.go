//go:build nosound

package speaker

import "github.com/vovakirdan/tone-memory/internal/audio"

// Player is the no-device build: Open always fails and tones are dropped.
type Player struct{}

// New returns a player that never makes a sound.
func New(audio.Tone) *Player {
	return &Player{}
}

// Open reports ErrNoDevice.
func (p *Player) Open() error {
	return ErrNoDevice
}

// PlayTone does nothing.
func (p *Player) PlayTone(float64) {}

// Close does nothing.
func (p *Player) Close() error {
	return nil
}
