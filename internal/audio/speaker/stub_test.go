//go:build nosound

package speaker

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tone-memory/internal/audio"
)

func TestStubReportsNoDevice(t *testing.T) {
	p := New(audio.DefaultTone())
	if err := p.Open(); !errors.Is(err, ErrNoDevice) {
		t.Fatalf("Open() = %v, want ErrNoDevice", err)
	}
	p.PlayTone(440)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
