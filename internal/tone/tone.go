// Package tone holds the fixed table of notes a card can carry and the
// frequency each one is played at.
package tone

import "fmt"

// Note identifies one of the playable tones.
type Note string

// The eight notes of the C major scale from middle C.
const (
	C4 Note = "C4"
	D4 Note = "D4"
	E4 Note = "E4"
	F4 Note = "F4"
	G4 Note = "G4"
	A4 Note = "A4"
	B4 Note = "B4"
	C5 Note = "C5"
)

var order = []Note{C4, D4, E4, F4, G4, A4, B4, C5}

var frequencies = map[Note]float64{
	C4: 261.63,
	D4: 293.66,
	E4: 329.63,
	F4: 349.23,
	G4: 392.00,
	A4: 440.00,
	B4: 493.88,
	C5: 523.25,
}

// Notes returns the note set in scale order.
func Notes() []Note {
	out := make([]Note, len(order))
	copy(out, order)
	return out
}

// Count returns the size of the note set.
func Count() int {
	return len(order)
}

// Frequency returns the frequency of n in Hz.
func Frequency(n Note) (float64, bool) {
	f, ok := frequencies[n]
	return f, ok
}

// MustFrequency is like Frequency but panics on a note outside the set.
func MustFrequency(n Note) float64 {
	f, ok := frequencies[n]
	if !ok {
		panic(fmt.Sprintf("tone: unknown note %q", string(n)))
	}
	return f
}

// Valid reports whether n belongs to the note set.
func (n Note) Valid() bool {
	_, ok := frequencies[n]
	return ok
}

func (n Note) String() string {
	return string(n)
}
