// Package deck deals the shuffled sequence of notes that backs a board.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tone-memory/internal/tone"
)

// Deck is the ordered sequence of notes assigned one-to-one to board cells.
type Deck struct {
	notes []tone.Note
}

// Build deals a deck of cellCount cards and shuffles it with rng.
//
// Cards are added in pairs, cycling through the note set, so every note
// appears an even number of times for any even cellCount. When cellCount is a
// multiple of twice the note set size each note appears exactly
// cellCount/tone.Count() times. An odd or non-positive cellCount is a
// programmer error and panics.
func Build(cellCount int, rng *rand.Rand) Deck {
	if cellCount <= 0 || cellCount%2 != 0 {
		panic(fmt.Sprintf("deck: cell count %d must be positive and even", cellCount))
	}

	set := tone.Notes()
	notes := make([]tone.Note, 0, cellCount)
	for i := 0; i < cellCount/2; i++ {
		n := set[i%len(set)]
		notes = append(notes, n, n)
	}

	// Fisher-Yates
	for i := len(notes) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		notes[i], notes[j] = notes[j], notes[i]
	}

	return Deck{notes: notes}
}

// New creates a deck with a fixed card order. Used for replays and tests.
// Panics if a note is unknown or appears an odd number of times.
func New(notes ...tone.Note) Deck {
	d := Deck{notes: append([]tone.Note(nil), notes...)}
	for n, c := range d.Counts() {
		if !n.Valid() {
			panic(fmt.Sprintf("deck: unknown note %q", string(n)))
		}
		if c%2 != 0 {
			panic(fmt.Sprintf("deck: note %s appears %d times, cannot be paired", n, c))
		}
	}
	return d
}

// Len returns the number of cards.
func (d Deck) Len() int {
	return len(d.notes)
}

// NoteAt returns the note on card index. An out-of-range index panics.
func (d Deck) NoteAt(index int) tone.Note {
	if index < 0 || index >= len(d.notes) {
		panic(fmt.Sprintf("deck: index %d out of range [0, %d)", index, len(d.notes)))
	}
	return d.notes[index]
}

// Notes returns a copy of the card order.
func (d Deck) Notes() []tone.Note {
	return append([]tone.Note(nil), d.notes...)
}

// Counts returns how many cards carry each note.
func (d Deck) Counts() map[tone.Note]int {
	counts := make(map[tone.Note]int)
	for _, n := range d.notes {
		counts[n]++
	}
	return counts
}
