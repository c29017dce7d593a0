package scene

import "github.com/vovakirdan/tone-memory/internal/core"

// Metrics holds every size the scenes lay out with. Coordinates are in the
// same unit as clicks: terminal cells for the TUI, pixels for PixelMetrics.
type Metrics struct {
	CardW, CardH int // card face
	GapX, GapY   int // space between cards
	BoardTop     int // first card row, below the HUD

	MinW, MinH int // smallest window
	PadW, PadH int // added to the board size when sizing the window

	ButtonW, ButtonH     int // menu buttons
	WideButtonW          int // start and confirm buttons
	LargeButtonH         int
	StepW, StepH         int // time minus/plus buttons
	PauseW, PauseH       int // pause toggle, top right
	MenuW                int // return-to-menu, below pause
	CornerTop, CornerGap int // pause distance from the top and right edges

	Row int // vertical unit for menu rows
}

// TerminalMetrics lays scenes out in terminal cells.
func TerminalMetrics() Metrics {
	return Metrics{
		CardW: 8, CardH: 2,
		GapX: 2, GapY: 1,
		BoardTop: 3,

		MinW: 60, MinH: 22,
		PadW: 10, PadH: 4,

		ButtonW: 30, ButtonH: 1,
		WideButtonW:  20,
		LargeButtonH: 1,
		StepW:        5, StepH: 1,
		PauseW:       10, PauseH: 1,
		MenuW:        10,
		CornerTop:    0, CornerGap: 1,

		Row: 2,
	}
}

// PixelMetrics is the layout of the windowed game: 100px cards, 10px gaps and
// 300x40, 200x50, 50x50 buttons.
func PixelMetrics() Metrics {
	return Metrics{
		CardW: 100, CardH: 100,
		GapX: 10, GapY: 10,
		BoardTop: 100,

		MinW: 600, MinH: 600,
		PadW: 100, PadH: 160,

		ButtonW: 300, ButtonH: 40,
		WideButtonW:  200,
		LargeButtonH: 50,
		StepW:        50, StepH: 50,
		PauseW:       80, PauseH: 40,
		MenuW:        150,
		CornerTop:    10, CornerGap: 20,

		Row: 50,
	}
}

// WindowSize returns the window needed for a grid x grid board.
func (m Metrics) WindowSize(grid int) (int, int) {
	w := core.Max(m.MinW, (m.CardW+m.GapX)*grid+m.PadW)
	h := core.Max(m.MinH, (m.CardH+m.GapY)*grid+m.PadH)
	return w, h
}

// DefaultWindowSize is the window used outside a game.
func (m Metrics) DefaultWindowSize() (int, int) {
	return m.MinW, m.MinH
}

// Menu and time screen rows, in Row units.
const (
	rowTitle    = 2
	rowBoard16  = 4
	rowBoard36  = 5
	rowTime     = 6
	rowAdjust   = 7
	rowStart    = 8
	rowValue    = 4
	rowSteps    = 5
	rowConfirm  = 7
	rowOverText = 4
	rowOverInfo = 5
	rowOverHint = 7
)

func (m Metrics) rowY(row int) int {
	return row * m.Row
}

func (m Metrics) centered(width, w, y, h int) core.Rect {
	return core.NewRect((width-w)/2, y, w, h)
}

func (m Metrics) board16Rect(width int) core.Rect {
	return m.centered(width, m.ButtonW, m.rowY(rowBoard16), m.ButtonH)
}

func (m Metrics) board36Rect(width int) core.Rect {
	return m.centered(width, m.ButtonW, m.rowY(rowBoard36), m.ButtonH)
}

func (m Metrics) adjustRect(width int) core.Rect {
	return m.centered(width, m.ButtonW, m.rowY(rowAdjust), m.ButtonH)
}

func (m Metrics) startRect(width int) core.Rect {
	return m.centered(width, m.WideButtonW, m.rowY(rowStart), m.LargeButtonH)
}

func (m Metrics) minusRect(width int) core.Rect {
	return core.NewRect(width/2-m.ButtonW/2, m.rowY(rowSteps), m.StepW, m.StepH)
}

func (m Metrics) plusRect(width int) core.Rect {
	return core.NewRect(width/2+m.ButtonW/2-m.StepW, m.rowY(rowSteps), m.StepW, m.StepH)
}

func (m Metrics) confirmRect(width int) core.Rect {
	return m.centered(width, m.WideButtonW, m.rowY(rowConfirm), m.LargeButtonH)
}

func (m Metrics) pauseRect(width int) core.Rect {
	return core.NewRect(width-m.PauseW-m.CornerGap, m.CornerTop, m.PauseW, m.PauseH)
}

func (m Metrics) menuRect(width int) core.Rect {
	return core.NewRect(width-m.MenuW-m.CornerGap, m.CornerTop+m.PauseH, m.MenuW, m.PauseH)
}

// CardRect returns the rectangle of card i on a grid x grid board centered in
// a window of the given width.
func (m Metrics) CardRect(width, grid, i int) core.Rect {
	boardW := (m.CardW+m.GapX)*grid - m.GapX
	left := core.Max(0, (width-boardW)/2)
	row, col := i/grid, i%grid
	return core.NewRect(
		left+col*(m.CardW+m.GapX),
		m.BoardTop+row*(m.CardH+m.GapY),
		m.CardW,
		m.CardH,
	)
}
