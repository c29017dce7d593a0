// Package scene drives the game's screens: the menu, the time limit screen,
// the board while playing and the end-of-game message. Pointer clicks are
// matched against a per-scene table of rectangles evaluated in order.
package scene

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tone-memory/internal/core"
	"github.com/vovakirdan/tone-memory/internal/deck"
	"github.com/vovakirdan/tone-memory/internal/memory"
)

// Scene identifies the active screen.
type Scene int

const (
	SceneMenu Scene = iota
	SceneTimeAdjust
	ScenePlaying
	SceneGameOver
)

// String returns the scene name.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneTimeAdjust:
		return "time_adjust"
	case ScenePlaying:
		return "playing"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Board sizes and time limit bounds.
const (
	BoardSmall = 16
	BoardLarge = 36

	MinTimeLimit     = 10
	MaxTimeLimit     = 300
	TimeStep         = 10
	DefaultTimeLimit = 60

	DefaultMismatchDelay = 500 * time.Millisecond
	DefaultGameOverDelay = 2 * time.Second
)

// Settings is the game configuration chosen in the menu. It persists across
// games until changed.
type Settings struct {
	BoardSize         int           // 16 or 36 cells
	TimeLimit         int           // seconds
	MismatchDelay     time.Duration // how long a mismatched pair stays visible
	GameOverDelay     time.Duration // how long the end message is shown
	ShowRevealedNotes bool          // label revealed cards with their note
}

// DefaultSettings returns a 4x4 board with a 60 second limit.
func DefaultSettings() Settings {
	return Settings{
		BoardSize:     BoardSmall,
		TimeLimit:     DefaultTimeLimit,
		MismatchDelay: DefaultMismatchDelay,
		GameOverDelay: DefaultGameOverDelay,
	}
}

// ClampTimeLimit bounds secs to the allowed range.
func ClampTimeLimit(secs int) int {
	return core.Clamp(secs, MinTimeLimit, MaxTimeLimit)
}

// Outcome is how a game ended.
type Outcome string

const (
	OutcomeCleared   Outcome = "cleared"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeAbandoned Outcome = "abandoned"
)

// Result describes a finished game.
type Result struct {
	BoardSize int
	TimeLimit int
	Matches   int
	Pairs     int
	Elapsed   time.Duration
	Outcome   Outcome
}

// ResultRecorder receives every finished game.
type ResultRecorder interface {
	RecordResult(Result)
}

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	Metrics  Metrics
	Settings Settings
	Player   memory.TonePlayer
	Recorder ResultRecorder
	Clock    func() time.Time
	Seed     int64 // 0 = time based

	// Deal overrides deck creation; used by tests for fixed boards.
	Deal func(cells int) deck.Deck
}

// Controller owns the active scene and, while playing, the current game.
type Controller struct {
	metrics  Metrics
	settings Settings
	scene    Scene

	game       *memory.Game
	mismatchAt time.Time // zero when no reset is pending
	overUntil  time.Time
	last       Result

	width, height int

	now      func() time.Time
	player   memory.TonePlayer
	recorder ResultRecorder
	deal     func(cells int) deck.Deck
}

// New creates a controller showing the menu.
func New(opts Options) *Controller {
	c := &Controller{
		metrics:  opts.Metrics,
		settings: opts.Settings,
		scene:    SceneMenu,
		now:      opts.Clock,
		player:   opts.Player,
		recorder: opts.Recorder,
		deal:     opts.Deal,
	}
	if c.metrics == (Metrics{}) {
		c.metrics = TerminalMetrics()
	}
	c.settings = c.settings.withDefaults()
	if c.now == nil {
		c.now = time.Now
	}
	if c.deal == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		c.deal = func(cells int) deck.Deck {
			return deck.Build(cells, rng)
		}
	}
	c.width, c.height = c.metrics.DefaultWindowSize()
	return c
}

func (s Settings) withDefaults() Settings {
	if s.BoardSize != BoardSmall && s.BoardSize != BoardLarge {
		s.BoardSize = BoardSmall
	}
	if s.TimeLimit == 0 {
		s.TimeLimit = DefaultTimeLimit
	}
	s.TimeLimit = ClampTimeLimit(s.TimeLimit)
	if s.MismatchDelay <= 0 {
		s.MismatchDelay = DefaultMismatchDelay
	}
	if s.GameOverDelay <= 0 {
		s.GameOverDelay = DefaultGameOverDelay
	}
	return s
}

// Scene returns the active scene.
func (c *Controller) Scene() Scene { return c.scene }

// Settings returns the pending game configuration.
func (c *Controller) Settings() Settings { return c.settings }

// Game returns the running game, or nil outside Playing.
func (c *Controller) Game() *memory.Game { return c.game }

// LastResult returns the most recently finished game.
func (c *Controller) LastResult() Result { return c.last }

// WindowSize returns the size the window should have for the active scene.
func (c *Controller) WindowSize() (int, int) { return c.width, c.height }

// MismatchPending reports whether a mismatched pair is waiting to be hidden.
func (c *Controller) MismatchPending() bool { return !c.mismatchAt.IsZero() }

// Tick advances time-driven transitions. Call once per frame.
func (c *Controller) Tick() {
	now := c.now()

	switch c.scene {
	case ScenePlaying:
		if c.MismatchPending() && !now.Before(c.mismatchAt) {
			c.game.ResetUnmatched()
			c.mismatchAt = time.Time{}
		}
		if st := c.game.State(); st.GameOver {
			outcome := OutcomeTimeout
			if st.Score == c.game.Pairs() {
				outcome = OutcomeCleared
			}
			c.finish(outcome, now)
		}
	case SceneGameOver:
		if !now.Before(c.overUntil) {
			c.toMenu()
		}
	}
}

// Click routes a pointer press at (x, y). Returns false when no region was hit.
func (c *Controller) Click(x, y int) bool {
	for _, r := range c.Regions() {
		if r.Rect.Contains(x, y) {
			c.apply(r)
			return true
		}
	}
	return false
}

// HandleAction applies a keyboard action. Returns false when the action means
// nothing in the active scene.
func (c *Controller) HandleAction(a core.Action) bool {
	switch c.scene {
	case SceneMenu:
		if a == core.ActionConfirm {
			c.apply(Region{Kind: RegionStart})
			return true
		}
	case SceneTimeAdjust:
		switch a {
		case core.ActionIncrease:
			c.apply(Region{Kind: RegionIncrease})
			return true
		case core.ActionDecrease:
			c.apply(Region{Kind: RegionDecrease})
			return true
		case core.ActionConfirm, core.ActionBack:
			c.apply(Region{Kind: RegionConfirm})
			return true
		}
	case ScenePlaying:
		switch a {
		case core.ActionPause:
			c.apply(Region{Kind: RegionPause})
			return true
		case core.ActionBack:
			if c.game.Paused() {
				c.apply(Region{Kind: RegionMenu})
				return true
			}
		}
	case SceneGameOver:
		if a == core.ActionConfirm || a == core.ActionBack {
			c.toMenu()
			return true
		}
	}
	return false
}

func (c *Controller) apply(r Region) {
	switch r.Kind {
	case RegionBoardSmall:
		c.settings.BoardSize = BoardSmall
	case RegionBoardLarge:
		c.settings.BoardSize = BoardLarge
	case RegionTimeScreen:
		c.scene = SceneTimeAdjust
	case RegionStart:
		c.start()
	case RegionDecrease:
		c.settings.TimeLimit = ClampTimeLimit(c.settings.TimeLimit - TimeStep)
	case RegionIncrease:
		c.settings.TimeLimit = ClampTimeLimit(c.settings.TimeLimit + TimeStep)
	case RegionConfirm:
		c.scene = SceneMenu
	case RegionPause:
		c.game.TogglePause()
	case RegionMenu:
		c.finish(OutcomeAbandoned, c.now())
		c.toMenu()
	case RegionCard:
		c.flip(r.Index)
	case RegionDismiss:
		c.toMenu()
	}
}

func (c *Controller) start() {
	opts := []memory.Option{memory.WithClock(c.now)}
	if c.player != nil {
		opts = append(opts, memory.WithPlayer(c.player))
	}
	c.game = memory.New(c.deal(c.settings.BoardSize), time.Duration(c.settings.TimeLimit)*time.Second, opts...)
	c.mismatchAt = time.Time{}
	c.scene = ScenePlaying
	c.width, c.height = c.metrics.WindowSize(c.game.GridSize())
}

func (c *Controller) flip(i int) {
	if !c.game.Flip(i) {
		return
	}
	if len(c.game.Selection()) < memory.MaxSelection {
		return
	}
	if c.game.ResolveSelection() == memory.Mismatch {
		c.mismatchAt = c.now().Add(c.settings.MismatchDelay)
	}
}

// finish records the result and discards the game. Cleared and timed out
// games move to the end screen; abandoned ones go straight to the menu.
func (c *Controller) finish(outcome Outcome, now time.Time) {
	c.last = Result{
		BoardSize: c.game.Len(),
		TimeLimit: int(c.game.TimeLimit() / time.Second),
		Matches:   c.game.Matches(),
		Pairs:     c.game.Pairs(),
		Elapsed:   c.game.ElapsedTime(),
		Outcome:   outcome,
	}
	if c.recorder != nil {
		c.recorder.RecordResult(c.last)
	}

	c.game = nil
	c.mismatchAt = time.Time{}
	if outcome != OutcomeAbandoned {
		c.scene = SceneGameOver
		c.overUntil = now.Add(c.settings.GameOverDelay)
	}
}

func (c *Controller) toMenu() {
	c.game = nil
	c.mismatchAt = time.Time{}
	c.scene = SceneMenu
	c.width, c.height = c.metrics.DefaultWindowSize()
}
