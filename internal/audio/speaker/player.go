//go:build !nosound

package speaker

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/vovakirdan/tone-memory/internal/audio"
)

// Player plays tones through oto.
type Player struct {
	tone audio.Tone

	once sync.Once
	ctx  *oto.Context
	err  error

	mu     sync.Mutex
	voices []*oto.Player // referenced until finished so playback is not collected
}

// New creates a player for the given tone shape. Call Open before the first
// tone.
func New(tone audio.Tone) *Player {
	return &Player{tone: tone}
}

// Open initializes the sound device and waits until it is ready. Later calls
// return the first result.
func (p *Player) Open() error {
	p.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   p.tone.SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			p.err = fmt.Errorf("speaker: open device: %w", err)
			return
		}
		<-ready
		p.ctx = ctx
	})
	return p.err
}

// PlayTone starts a tone at freq Hz and returns immediately. It does nothing
// unless Open succeeded.
func (p *Player) PlayTone(freq float64) {
	if p.ctx == nil {
		return
	}
	go func() {
		voice := p.ctx.NewPlayer(bytes.NewReader(p.tone.Render(freq)))
		voice.Play()

		p.mu.Lock()
		p.voices = append(p.prune(), voice)
		p.mu.Unlock()
	}()
}

// prune drops finished voices. Caller holds mu.
func (p *Player) prune() []*oto.Player {
	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		_ = v.Close()
	}
	return live
}

// Close stops every playing tone.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var first error
	for _, v := range p.voices {
		if err := v.Close(); err != nil && first == nil {
			first = err
		}
	}
	p.voices = nil
	if first != nil {
		return fmt.Errorf("speaker: close: %w", first)
	}
	return nil
}
