package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tone-memory/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. ColorDefault has no entry
// and leaves the terminal color alone.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:     lipgloss.Color("0"),
	core.ColorWhite:     lipgloss.Color("15"),
	core.ColorRed:       lipgloss.Color("9"),
	core.ColorDarkRed:   lipgloss.Color("88"),
	core.ColorGreen:     lipgloss.Color("34"),
	core.ColorDarkGreen: lipgloss.Color("22"),
	core.ColorBlue:      lipgloss.Color("25"),
	core.ColorPauseBlue: lipgloss.Color("68"),
	core.ColorMenuBlue:  lipgloss.Color("61"),
	core.ColorGray:      lipgloss.Color("240"),
	core.ColorLightGray: lipgloss.Color("250"),
	core.ColorYellow:    lipgloss.Color("178"),
}

type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

func (c cellStyle) style() lipgloss.Style {
	s := lipgloss.NewStyle().Bold(c.bold)
	if fg, ok := palette[c.fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := palette[c.bg]; ok {
		s = s.Background(bg)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg, bold: cell.Bold}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[key]
			if !ok {
				style = key.style()
				styles[key] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
