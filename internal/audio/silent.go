package audio

// Silent discards every tone. Used with --mute and for SSH sessions, which
// have no local sound device.
type Silent struct{}

// PlayTone does nothing.
func (Silent) PlayTone(float64) {}
