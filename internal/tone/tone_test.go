package tone

import "testing"

func TestFrequencies(t *testing.T) {
	tests := []struct {
		note Note
		hz   float64
	}{
		{C4, 261.63},
		{D4, 293.66},
		{E4, 329.63},
		{F4, 349.23},
		{G4, 392.00},
		{A4, 440.00},
		{B4, 493.88},
		{C5, 523.25},
	}

	for _, tc := range tests {
		t.Run(tc.note.String(), func(t *testing.T) {
			got, ok := Frequency(tc.note)
			if !ok {
				t.Fatalf("Frequency(%s) not found", tc.note)
			}
			if got != tc.hz {
				t.Errorf("Frequency(%s) = %v, want %v", tc.note, got, tc.hz)
			}
		})
	}
}

func TestNotesAscending(t *testing.T) {
	notes := Notes()
	if len(notes) != Count() || Count() != 8 {
		t.Fatalf("Notes() length = %d, Count() = %d, want 8", len(notes), Count())
	}
	for i := 1; i < len(notes); i++ {
		if MustFrequency(notes[i]) <= MustFrequency(notes[i-1]) {
			t.Errorf("%s should be higher than %s", notes[i], notes[i-1])
		}
	}

	// Callers get a copy
	notes[0] = "X9"
	if Notes()[0] != C4 {
		t.Error("Notes() should not expose the internal table")
	}
}

func TestUnknownNote(t *testing.T) {
	if _, ok := Frequency("H2"); ok {
		t.Error("Frequency should reject unknown note")
	}
	if Note("H2").Valid() {
		t.Error("Valid() should be false for unknown note")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustFrequency should panic for unknown note")
		}
	}()
	MustFrequency("H2")
}
