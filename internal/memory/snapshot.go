package memory

import "time"

// StateType names the overall phase of a game.
type StateType string

const (
	StatePlaying StateType = "playing"
	StatePaused  StateType = "paused"
	StateCleared StateType = "cleared"
	StateTimeout StateType = "timeout"
)

// Snapshot captures the complete game state for tests and result recording.
type Snapshot struct {
	Cells     int
	Grid      int
	Matches   int
	Pairs     int
	Selection []int
	Hidden    int
	Revealed  int
	Elapsed   time.Duration
	TimeLeft  time.Duration
	Limit     time.Duration
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cells:     len(g.cells),
		Grid:      g.grid,
		Matches:   g.matches,
		Pairs:     g.Pairs(),
		Selection: g.Selection(),
		Elapsed:   g.ElapsedTime(),
		TimeLeft:  g.TimeLeft(),
		Limit:     g.timer.Limit(),
	}
	for _, v := range g.cells {
		switch v {
		case Hidden:
			s.Hidden++
		case Revealed:
			s.Revealed++
		}
	}

	switch {
	case g.IsComplete():
		s.State = StateCleared
	case g.Paused():
		s.State = StatePaused
	case s.TimeLeft == 0:
		s.State = StateTimeout
	default:
		s.State = StatePlaying
	}
	return s
}
