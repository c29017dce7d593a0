package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tone-memory/internal/core"
	"github.com/vovakirdan/tone-memory/internal/scene"
)

// Model is the Bubble Tea model that hosts a scene controller.
type Model struct {
	ctrl     *scene.Controller
	screen   *core.Screen
	keys     *KeyMapper
	tickRate int

	termW, termH int // 0 until the first WindowSizeMsg
	quitting     bool
}

// NewModel creates a model around ctrl, ticking tickRate times per second.
func NewModel(ctrl *scene.Controller, tickRate int) Model {
	w, h := ctrl.WindowSize()
	return Model{
		ctrl:     ctrl,
		screen:   core.NewScreen(w, h),
		keys:     NewKeyMapper(),
		tickRate: tickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if click, ok := m.keys.MapMouse(msg); ok {
			m.ctrl.Click(click.X, click.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		m.ctrl.Tick()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.ctrl.HandleAction(action)
	}
	return m, nil
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// tooSmall reports whether the terminal cannot show the whole window.
func (m Model) tooSmall() bool {
	w, h := m.ctrl.WindowSize()
	return m.termW > 0 && (m.termW < w || m.termH < h)
}

// draw renders the controller into the screen buffer.
func (m Model) draw() {
	w, h := m.ctrl.WindowSize()
	m.screen.Resize(w, h)
	m.screen.Clear()
	m.ctrl.Render(m.screen)
}

// saveScreenshot saves the current screen to ~/.tonememory/screenshots.
func (m Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tonememory", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.ctrl.Scene(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		w, h := m.ctrl.WindowSize()
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h, m.termW, m.termH)
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, msg)
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given controller.
func Run(ctrl *scene.Controller, tickRate int) error {
	p := tea.NewProgram(
		NewModel(ctrl, tickRate),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
