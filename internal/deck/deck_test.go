package deck

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tone-memory/internal/tone"
)

func TestBuildExactPairing(t *testing.T) {
	for _, n := range []int{16, 32, 64} {
		d := Build(n, rand.New(rand.NewSource(7)))

		if d.Len() != n {
			t.Errorf("Build(%d) length = %d", n, d.Len())
		}

		counts := d.Counts()
		if len(counts) != tone.Count() {
			t.Errorf("Build(%d) uses %d notes, want %d", n, len(counts), tone.Count())
		}
		for note, c := range counts {
			if c != n/tone.Count() {
				t.Errorf("Build(%d): note %s appears %d times, want %d", n, note, c, n/tone.Count())
			}
		}
	}
}

func TestBuildLargeBoardStaysPairable(t *testing.T) {
	// 36 is not a multiple of 16, but every note must still pair up
	d := Build(36, rand.New(rand.NewSource(1)))

	total := 0
	for note, c := range d.Counts() {
		if c%2 != 0 {
			t.Errorf("note %s appears %d times on a 36-card board", note, c)
		}
		total += c
	}
	if total != 36 {
		t.Errorf("total cards = %d, want 36", total)
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	a := Build(16, rand.New(rand.NewSource(12345)))
	b := Build(16, rand.New(rand.NewSource(12345)))

	for i, n := 0, a.Len(); i < n; i++ {
		if a.NoteAt(i) != b.NoteAt(i) {
			t.Fatalf("same seed produced different decks at %d: %s vs %s", i, a.NoteAt(i), b.NoteAt(i))
		}
	}
}

func TestBuildShuffles(t *testing.T) {
	// Unshuffled order is C4 C4 D4 D4 ...; over a few seeds at least one
	// deck must break that adjacency.
	differs := false
	for seed := int64(1); seed <= 5 && !differs; seed++ {
		d := Build(16, rand.New(rand.NewSource(seed)))
		for i := 0; i < d.Len(); i += 2 {
			if d.NoteAt(i) != d.NoteAt(i+1) {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Error("Build should shuffle the cards")
	}
}

func TestBuildRejectsOddCount(t *testing.T) {
	for _, n := range []int{0, -4, 15} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Build(%d) should panic", n)
				}
			}()
			Build(n, rand.New(rand.NewSource(1)))
		}()
	}
}

func TestNoteAtOutOfRange(t *testing.T) {
	d := New(tone.C4, tone.C4)
	if d.NoteAt(1) != tone.C4 {
		t.Errorf("NoteAt(1) = %s, want C4", d.NoteAt(1))
	}

	defer func() {
		if recover() == nil {
			t.Error("NoteAt(2) should panic")
		}
	}()
	d.NoteAt(2)
}

func TestNewRejectsUnpairedNote(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with a single D4 should panic")
		}
	}()
	New(tone.C4, tone.C4, tone.D4)
}

func TestNotesReturnsCopy(t *testing.T) {
	d := New(tone.C4, tone.C4)
	notes := d.Notes()
	notes[0] = tone.D4
	if d.NoteAt(0) != tone.C4 {
		t.Error("Notes() should return a copy")
	}
}
