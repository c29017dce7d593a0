package memory

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tone-memory/internal/deck"
	"github.com/vovakirdan/tone-memory/internal/tone"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingPlayer struct {
	played []float64
}

func (p *recordingPlayer) PlayTone(freq float64) {
	p.played = append(p.played, freq)
}

// scenarioDeck puts C4 C4 D4 E4 in the first four cells of a 16-card board.
func scenarioDeck() deck.Deck {
	return deck.New(
		tone.C4, tone.C4, tone.D4, tone.E4,
		tone.D4, tone.E4, tone.F4, tone.F4,
		tone.G4, tone.G4, tone.A4, tone.A4,
		tone.B4, tone.B4, tone.C5, tone.C5,
	)
}

func newScenarioGame(t *testing.T) (*Game, *fakeClock, *recordingPlayer) {
	t.Helper()
	clock := newFakeClock()
	player := &recordingPlayer{}
	g := New(scenarioDeck(), 60*time.Second, WithClock(clock.Now), WithPlayer(player))
	return g, clock, player
}

func TestScenarioMatchThenMismatch(t *testing.T) {
	g, _, _ := newScenarioGame(t)

	g.Flip(0)
	g.Flip(1)
	if r := g.ResolveSelection(); r != Match {
		t.Fatalf("C4/C4 resolution = %v, want match", r)
	}
	if g.Matches() != 1 {
		t.Errorf("matches = %d, want 1", g.Matches())
	}

	g.Flip(2)
	g.Flip(3)
	if r := g.ResolveSelection(); r != Mismatch {
		t.Fatalf("D4/E4 resolution = %v, want mismatch", r)
	}
	if g.CellState(2) != Revealed || g.CellState(3) != Revealed {
		t.Errorf("mismatched cells should stay revealed until reset, got %v %v",
			g.CellState(2), g.CellState(3))
	}

	g.ResetUnmatched()
	if g.CellState(2) != Hidden || g.CellState(3) != Hidden {
		t.Errorf("after reset cells = %v %v, want hidden", g.CellState(2), g.CellState(3))
	}
	if len(g.Selection()) != 0 {
		t.Errorf("selection after reset = %v, want empty", g.Selection())
	}
	if g.Matches() != 1 {
		t.Errorf("matches after reset = %d, want 1", g.Matches())
	}
}

func TestFlipPlaysOneTonePerSuccessfulFlip(t *testing.T) {
	g, _, player := newScenarioGame(t)

	g.Flip(2)
	g.Flip(2) // already revealed
	g.Flip(3)
	g.Flip(4) // buffer full
	g.Flip(-1)
	g.Flip(16)

	want := []float64{tone.MustFrequency(tone.D4), tone.MustFrequency(tone.E4)}
	if len(player.played) != len(want) {
		t.Fatalf("played %d tones, want %d: %v", len(player.played), len(want), player.played)
	}
	for i := range want {
		if player.played[i] != want[i] {
			t.Errorf("tone %d = %v Hz, want %v", i, player.played[i], want[i])
		}
	}
}

func TestFlipNoOps(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		flip  int
	}{
		{"revealed cell", func(g *Game) { g.Flip(5) }, 5},
		{"matched cell", func(g *Game) { g.Flip(0); g.Flip(1); g.ResolveSelection() }, 0},
		{"buffer full", func(g *Game) { g.Flip(2); g.Flip(3) }, 6},
		{"negative index", func(g *Game) {}, -3},
		{"index past board", func(g *Game) {}, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newScenarioGame(t)
			tt.setup(g)

			before := g.Cells()
			sel := g.Selection()
			if g.Flip(tt.flip) {
				t.Fatalf("Flip(%d) returned true", tt.flip)
			}

			after := g.Cells()
			for i := range before {
				if before[i] != after[i] {
					t.Errorf("cell %d changed from %v to %v", i, before[i], after[i])
				}
			}
			if len(g.Selection()) != len(sel) {
				t.Errorf("selection changed from %v to %v", sel, g.Selection())
			}
		})
	}
}

func TestResolvePending(t *testing.T) {
	g, _, _ := newScenarioGame(t)

	if r := g.ResolveSelection(); r != Pending {
		t.Errorf("empty buffer resolution = %v, want pending", r)
	}
	g.Flip(0)
	if r := g.ResolveSelection(); r != Pending {
		t.Errorf("single card resolution = %v, want pending", r)
	}
	if g.CellState(0) != Revealed {
		t.Errorf("cell 0 = %v, want revealed", g.CellState(0))
	}
}

func TestMatchClearsBuffer(t *testing.T) {
	g, _, _ := newScenarioGame(t)

	g.Flip(6)
	g.Flip(7)
	g.ResolveSelection()

	if g.CellState(6) != Matched || g.CellState(7) != Matched {
		t.Errorf("cells = %v %v, want matched", g.CellState(6), g.CellState(7))
	}
	if len(g.Selection()) != 0 {
		t.Errorf("selection = %v, want empty", g.Selection())
	}
}

func TestIsComplete(t *testing.T) {
	g, _, _ := newScenarioGame(t)
	notes := scenarioDeck().Notes()

	// Pair up cells by note
	byNote := make(map[tone.Note][]int)
	for i, n := range notes {
		byNote[n] = append(byNote[n], i)
	}

	found := 0
	for _, n := range tone.Notes() {
		idx := byNote[n]
		for k := 0; k+1 < len(idx); k += 2 {
			if g.IsComplete() {
				t.Fatalf("complete after %d matches", found)
			}
			g.Flip(idx[k])
			g.Flip(idx[k+1])
			if r := g.ResolveSelection(); r != Match {
				t.Fatalf("pair %v resolution = %v", n, r)
			}
			found++
		}
	}

	if found != 8 {
		t.Fatalf("found %d pairs, want 8", found)
	}
	if !g.IsComplete() {
		t.Error("game should be complete after 8 matches")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true when complete")
	}
}

func TestLargeBoardIsWinnable(t *testing.T) {
	d := deck.Build(36, rand.New(rand.NewSource(99)))
	g := New(d, time.Minute)

	if g.GridSize() != 6 {
		t.Fatalf("grid = %d, want 6", g.GridSize())
	}

	byNote := make(map[tone.Note][]int)
	for i, n := range d.Notes() {
		byNote[n] = append(byNote[n], i)
	}
	for _, idx := range byNote {
		for k := 0; k+1 < len(idx); k += 2 {
			g.Flip(idx[k])
			g.Flip(idx[k+1])
			g.ResolveSelection()
		}
	}

	if !g.IsComplete() || g.Matches() != 18 {
		t.Errorf("36-card board: complete=%v matches=%d, want true 18", g.IsComplete(), g.Matches())
	}
}

func TestNewRejectsNonSquareDeck(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with 6 cards should panic")
		}
	}()
	New(deck.New(tone.C4, tone.C4, tone.D4, tone.D4, tone.E4, tone.E4), time.Minute)
}

func TestTimeLeftMonotoneAndClamped(t *testing.T) {
	g, clock, _ := newScenarioGame(t)

	prev := g.TimeLeft()
	if prev != 60*time.Second {
		t.Fatalf("initial time left = %v, want 60s", prev)
	}

	for i := 0; i < 10; i++ {
		clock.Advance(7 * time.Second)
		left := g.TimeLeft()
		if left > prev {
			t.Fatalf("time left increased from %v to %v", prev, left)
		}
		if left < 0 {
			t.Fatalf("time left negative: %v", left)
		}
		prev = left
	}

	if !g.TimeUp() {
		t.Error("TimeUp should be true after 70s on a 60s limit")
	}

	clock.Advance(time.Hour)
	if g.TimeLeft() != 0 {
		t.Errorf("time left long after limit = %v, want 0", g.TimeLeft())
	}
}

func TestPauseFreezesTime(t *testing.T) {
	g, clock, _ := newScenarioGame(t)

	clock.Advance(10 * time.Second)
	g.TogglePause()
	if !g.Paused() {
		t.Fatal("expected paused")
	}

	frozen := g.TimeLeft()
	clock.Advance(30 * time.Second)
	if g.TimeLeft() != frozen {
		t.Errorf("time left moved while paused: %v -> %v", frozen, g.TimeLeft())
	}
	if g.ElapsedTime() != 10*time.Second {
		t.Errorf("elapsed while paused = %v, want 10s", g.ElapsedTime())
	}

	g.TogglePause()
	clock.Advance(5 * time.Second)
	if g.ElapsedTime() != 15*time.Second {
		t.Errorf("elapsed after resume = %v, want 15s", g.ElapsedTime())
	}
	if g.timer.AccumulatedPause() != 30*time.Second {
		t.Errorf("accumulated pause = %v, want 30s", g.timer.AccumulatedPause())
	}
}

func TestDoubleTogglePreservesAccounting(t *testing.T) {
	g, clock, _ := newScenarioGame(t)
	clock.Advance(12 * time.Second)

	before := g.timer.AccumulatedPause()
	left := g.TimeLeft()

	g.TogglePause()
	g.TogglePause()

	if g.timer.AccumulatedPause() != before {
		t.Errorf("accumulated pause changed: %v -> %v", before, g.timer.AccumulatedPause())
	}
	if g.TimeLeft() != left {
		t.Errorf("time left changed: %v -> %v", left, g.TimeLeft())
	}
	if g.Paused() {
		t.Error("two toggles should leave the game running")
	}
}

func TestPauseResumeIdempotent(t *testing.T) {
	g, clock, _ := newScenarioGame(t)

	g.Pause()
	clock.Advance(4 * time.Second)
	g.Pause() // must not move pause start
	clock.Advance(6 * time.Second)
	g.Resume()
	g.Resume()

	if g.timer.AccumulatedPause() != 10*time.Second {
		t.Errorf("accumulated pause = %v, want 10s", g.timer.AccumulatedPause())
	}
	if g.ElapsedTime() != 0 {
		t.Errorf("elapsed = %v, want 0", g.ElapsedTime())
	}
}

func TestPausedTimeUpIsNotGameOver(t *testing.T) {
	g, clock, _ := newScenarioGame(t)

	clock.Advance(59 * time.Second)
	g.Pause()
	clock.Advance(time.Hour)

	if g.TimeUp() {
		t.Error("paused game should not run out of time")
	}
	if g.State().GameOver {
		t.Error("paused game should not be over")
	}
}

func TestSnapshot(t *testing.T) {
	g, clock, _ := newScenarioGame(t)

	g.Flip(0)
	g.Flip(1)
	g.ResolveSelection()
	g.Flip(2)
	clock.Advance(20 * time.Second)

	s := g.Snapshot()
	if s.Cells != 16 || s.Grid != 4 || s.Pairs != 8 {
		t.Errorf("board = %d cells grid %d pairs %d", s.Cells, s.Grid, s.Pairs)
	}
	if s.Matches != 1 || s.Revealed != 1 || s.Hidden != 13 {
		t.Errorf("matches=%d revealed=%d hidden=%d, want 1 1 13", s.Matches, s.Revealed, s.Hidden)
	}
	if len(s.Selection) != 1 || s.Selection[0] != 2 {
		t.Errorf("selection = %v, want [2]", s.Selection)
	}
	if s.TimeLeft != 40*time.Second || s.State != StatePlaying {
		t.Errorf("time left %v state %s", s.TimeLeft, s.State)
	}

	clock.Advance(time.Minute)
	if g.Snapshot().State != StateTimeout {
		t.Errorf("state = %s, want timeout", g.Snapshot().State)
	}
}
