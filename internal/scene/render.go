package scene

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tone-memory/internal/core"
	"github.com/vovakirdan/tone-memory/internal/memory"
)

// Canvas is the drawing surface scenes render into. core.Screen implements it.
type Canvas interface {
	FillRect(r core.Rect, bg core.Color)
	DrawText(x, y int, text string, fg core.Color, size core.FontSize)
	TextWidth(text string, size core.FontSize) int
}

const hiddenNoteGlyph = "♪"

// Render draws the active scene.
func (c *Controller) Render(cv Canvas) {
	cv.FillRect(core.NewRect(0, 0, c.width, c.height), core.ColorBlack)

	switch c.scene {
	case SceneMenu:
		c.renderMenu(cv)
	case SceneTimeAdjust:
		c.renderTimeAdjust(cv)
	case ScenePlaying:
		c.renderPlaying(cv)
	case SceneGameOver:
		c.renderGameOver(cv)
	}
}

func (c *Controller) renderMenu(cv Canvas) {
	m, w := c.metrics, c.width

	centerText(cv, w, m.rowY(rowTitle), "Tone Memory", core.ColorWhite, core.FontLarge)

	small, large := core.ColorGray, core.ColorGray
	if c.settings.BoardSize == BoardSmall {
		small = core.ColorMenuBlue
	} else {
		large = core.ColorMenuBlue
	}
	button(cv, m.board16Rect(w), "4x4 (16 cards)", small, core.FontMedium)
	button(cv, m.board36Rect(w), "6x6 (36 cards)", large, core.FontMedium)

	centerText(cv, w, m.rowY(rowTime), fmt.Sprintf("Time limit: %ds", c.settings.TimeLimit), core.ColorLightGray, core.FontSmall)
	button(cv, m.adjustRect(w), "Adjust time", core.ColorBlue, core.FontMedium)
	button(cv, m.startRect(w), "Start", core.ColorDarkGreen, core.FontMedium)
}

func (c *Controller) renderTimeAdjust(cv Canvas) {
	m, w := c.metrics, c.width

	centerText(cv, w, m.rowY(rowTitle), "Time Limit", core.ColorWhite, core.FontLarge)
	centerText(cv, w, m.rowY(rowValue), fmt.Sprintf("%d seconds", c.settings.TimeLimit), core.ColorYellow, core.FontLarge)

	button(cv, m.minusRect(w), "-", core.ColorDarkRed, core.FontLarge)
	button(cv, m.plusRect(w), "+", core.ColorDarkGreen, core.FontLarge)
	button(cv, m.confirmRect(w), "Confirm", core.ColorBlue, core.FontMedium)
}

func (c *Controller) renderPlaying(cv Canvas) {
	m, w, g := c.metrics, c.width, c.game

	cv.DrawText(m.CornerGap, m.CornerTop, fmt.Sprintf("Matches: %d/%d", g.Matches(), g.Pairs()), core.ColorWhite, core.FontSmall)
	cv.DrawText(m.CornerGap, m.CornerTop+m.PauseH, fmt.Sprintf("Time: %ds", secondsCeil(g.TimeLeft())), timeColor(g.TimeLeft()), core.FontSmall)

	if g.Paused() {
		button(cv, m.pauseRect(w), "Resume", core.ColorPauseBlue, core.FontSmall)
		button(cv, m.menuRect(w), "Menu", core.ColorMenuBlue, core.FontSmall)
	} else {
		button(cv, m.pauseRect(w), "Pause", core.ColorPauseBlue, core.FontSmall)
	}

	grid := g.GridSize()
	for i := 0; i < g.Len(); i++ {
		r := m.CardRect(w, grid, i)
		switch g.CellState(i) {
		case memory.Hidden:
			cv.FillRect(r, core.ColorGray)
		case memory.Revealed:
			label := hiddenNoteGlyph
			if c.settings.ShowRevealedNotes {
				label = g.NoteAt(i).String()
			}
			button(cv, r, label, core.ColorYellow, core.FontMedium)
		case memory.Matched:
			button(cv, r, g.NoteAt(i).String(), core.ColorGreen, core.FontMedium)
		}
	}

	if g.Paused() {
		centerText(cv, w, m.BoardTop-1, "PAUSED", core.ColorYellow, core.FontLarge)
	}
}

func (c *Controller) renderGameOver(cv Canvas) {
	m, w, r := c.metrics, c.width, c.LastResult()

	msg, color := "All pairs found!", core.ColorGreen
	if r.Outcome == OutcomeTimeout {
		msg, color = "Time's up!", core.ColorRed
	}
	centerText(cv, w, m.rowY(rowOverText), msg, color, core.FontLarge)

	info := fmt.Sprintf("%d/%d pairs in %.1fs", r.Matches, r.Pairs, r.Elapsed.Seconds())
	centerText(cv, w, m.rowY(rowOverInfo), info, core.ColorWhite, core.FontMedium)
	centerText(cv, w, m.rowY(rowOverHint), "click to continue", core.ColorLightGray, core.FontSmall)
}

// button fills r and centers label inside it.
func button(cv Canvas, r core.Rect, label string, bg core.Color, size core.FontSize) {
	cv.FillRect(r, bg)
	tw := cv.TextWidth(label, size)
	cv.DrawText(r.X+(r.W-tw)/2, r.Y+(r.H-1)/2, label, core.ColorWhite, size)
}

func centerText(cv Canvas, width, y int, text string, fg core.Color, size core.FontSize) {
	cv.DrawText((width-cv.TextWidth(text, size))/2, y, text, fg, size)
}

func secondsCeil(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func timeColor(left time.Duration) core.Color {
	if left <= 10*time.Second {
		return core.ColorRed
	}
	return core.ColorWhite
}
