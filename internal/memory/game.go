// Package memory implements the card-matching rules: board visibility, the
// two-card selection buffer, the match counter and the pausable countdown.
//
// The package is pure: time comes from an injected clock and sound goes out
// through TonePlayer, so every transition can be driven from tests.
package memory

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tone-memory/internal/core"
	"github.com/vovakirdan/tone-memory/internal/deck"
	"github.com/vovakirdan/tone-memory/internal/tone"
)

// Visibility is the face state of a single card.
type Visibility int

const (
	Hidden Visibility = iota
	Revealed
	Matched
)

// String returns the visibility name.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of checking the selection buffer.
type Resolution int

const (
	// Pending means fewer than two cards are selected.
	Pending Resolution = iota
	// Match means both selected cards carried the same note.
	Match
	// Mismatch means the notes differ; cards stay revealed until ResetUnmatched.
	Mismatch
)

// String returns the resolution name.
func (r Resolution) String() string {
	switch r {
	case Pending:
		return "pending"
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// MaxSelection is the number of cards revealed per turn.
const MaxSelection = 2

// TonePlayer plays a tone at a frequency in Hz. Implementations must not
// block for the length of the tone.
type TonePlayer interface {
	PlayTone(freq float64)
}

// Game is one playthrough: created when a game starts and discarded when it
// ends or is abandoned.
type Game struct {
	deck      deck.Deck
	cells     []Visibility
	selection []int
	matches   int
	grid      int

	timer  Timer
	now    func() time.Time
	player TonePlayer
}

// Option customizes a Game.
type Option func(*Game)

// WithClock sets the time source. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithPlayer sets the tone player. Defaults to silence.
func WithPlayer(p TonePlayer) Option {
	return func(g *Game) {
		g.player = p
	}
}

type silentPlayer struct{}

func (silentPlayer) PlayTone(float64) {}

// New starts a game over d with the given time limit. The deck length must be
// a perfect square; anything else panics.
func New(d deck.Deck, limit time.Duration, opts ...Option) *Game {
	grid := int(math.Round(math.Sqrt(float64(d.Len()))))
	if grid*grid != d.Len() {
		panic(fmt.Sprintf("memory: deck length %d is not a perfect square", d.Len()))
	}

	g := &Game{
		deck:      d,
		cells:     make([]Visibility, d.Len()),
		selection: make([]int, 0, MaxSelection),
		grid:      grid,
		now:       time.Now,
		player:    silentPlayer{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.timer = NewTimer(g.now(), limit)
	return g
}

// Flip reveals cell index and plays its tone. Returns false without side
// effects if the index is off the board, the cell is not Hidden, or two cards
// are already selected.
func (g *Game) Flip(index int) bool {
	if index < 0 || index >= len(g.cells) {
		return false
	}
	if g.cells[index] != Hidden || len(g.selection) >= MaxSelection {
		return false
	}

	g.cells[index] = Revealed
	g.selection = append(g.selection, index)
	g.player.PlayTone(tone.MustFrequency(g.deck.NoteAt(index)))
	return true
}

// ResolveSelection compares the two selected cards. On Match both become
// Matched and the buffer is cleared; on Mismatch nothing changes until
// ResetUnmatched.
func (g *Game) ResolveSelection() Resolution {
	if len(g.selection) < MaxSelection {
		return Pending
	}

	a, b := g.selection[0], g.selection[1]
	if g.deck.NoteAt(a) != g.deck.NoteAt(b) {
		return Mismatch
	}

	g.cells[a] = Matched
	g.cells[b] = Matched
	g.matches++
	g.selection = g.selection[:0]
	return Match
}

// ResetUnmatched hides every selected card and clears the buffer.
func (g *Game) ResetUnmatched() {
	for _, i := range g.selection {
		if g.cells[i] == Revealed {
			g.cells[i] = Hidden
		}
	}
	g.selection = g.selection[:0]
}

// IsComplete reports whether every pair has been found.
func (g *Game) IsComplete() bool {
	return g.matches == g.Pairs()
}

// ElapsedTime returns unpaused play time.
func (g *Game) ElapsedTime() time.Duration {
	return g.timer.Elapsed(g.now())
}

// TimeLeft returns the remaining time, clamped at zero.
func (g *Game) TimeLeft() time.Duration {
	return g.timer.Left(g.now())
}

// TimeUp reports whether the countdown has reached zero.
func (g *Game) TimeUp() bool {
	return g.TimeLeft() == 0
}

// TimeLimit returns the configured limit.
func (g *Game) TimeLimit() time.Duration {
	return g.timer.Limit()
}

// Paused reports whether the timer is frozen.
func (g *Game) Paused() bool {
	return g.timer.Paused()
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() {
	if g.timer.Paused() {
		g.Resume()
		return
	}
	g.Pause()
}

// Pause freezes the timer. No-op when already paused.
func (g *Game) Pause() {
	g.timer.Pause(g.now())
}

// Resume restarts the timer. No-op when not paused.
func (g *Game) Resume() {
	g.timer.Resume(g.now())
}

// Cells returns a copy of every cell's visibility.
func (g *Game) Cells() []Visibility {
	return append([]Visibility(nil), g.cells...)
}

// CellState returns the visibility of cell i. Panics when i is off the board.
func (g *Game) CellState(i int) Visibility {
	return g.cells[i]
}

// NoteAt returns the note carried by cell i.
func (g *Game) NoteAt(i int) tone.Note {
	return g.deck.NoteAt(i)
}

// Selection returns a copy of the selection buffer in flip order.
func (g *Game) Selection() []int {
	return append([]int(nil), g.selection...)
}

// Matches returns the number of pairs found.
func (g *Game) Matches() int {
	return g.matches
}

// Pairs returns the number of pairs on the board.
func (g *Game) Pairs() int {
	return len(g.cells) / 2
}

// Len returns the number of cells.
func (g *Game) Len() int {
	return len(g.cells)
}

// GridSize returns the side of the square board.
func (g *Game) GridSize() int {
	return g.grid
}

// State summarizes the game for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.matches,
		GameOver: g.IsComplete() || (g.TimeUp() && !g.Paused()),
		Paused:   g.Paused(),
	}
}
