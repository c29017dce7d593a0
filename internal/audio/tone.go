// Package audio synthesizes the card tones as PCM. It has no device code, so
// it builds everywhere; package speaker plays the samples locally.
package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Tone describes the sine wave played for a card.
type Tone struct {
	SampleRate int
	Duration   time.Duration
	Amplitude  float64 // 0..1 of full scale
}

// DefaultTone is one second at half amplitude, 44.1 kHz.
func DefaultTone() Tone {
	return Tone{
		SampleRate: 44100,
		Duration:   time.Second,
		Amplitude:  0.5,
	}
}

// Samples returns how many samples the tone lasts.
func (t Tone) Samples() int {
	return int(float64(t.SampleRate) * t.Duration.Seconds())
}

// Render synthesizes a mono signed 16-bit little-endian sine at freq Hz.
func (t Tone) Render(freq float64) []byte {
	n := t.Samples()
	buf := make([]byte, n*2)
	amp := math.Max(0, math.Min(1, t.Amplitude)) * math.MaxInt16
	for i := 0; i < n; i++ {
		v := int16(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(t.SampleRate)))
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(v))
	}
	return buf
}
