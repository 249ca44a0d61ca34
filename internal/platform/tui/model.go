package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-game/internal/core"
	"github.com/vovakirdan/brick-game/internal/registry"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	recorder *Recorder
	config   core.RuntimeConfig
	input    core.InputFrame
	hold     *core.HoldTracker
	keys     *KeyMapper
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for game. hold decides when repeated keys count
// as held.
func NewModel(game registry.Game, rec *Recorder, cfg core.RuntimeConfig, hold *core.HoldTracker) Model {
	cfg = cfg.WithDefaults()
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder: rec,
		config:   cfg,
		input:    core.NewInputFrame(),
		hold:     hold,
		keys:     NewKeyMapper(),
		now:      time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return nextFrame(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the latest action for the next tick. Quit keys are
// delivered to the game at once so a running game ends before the program
// exits.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	held := m.hold.Observe(action, m.now())

	if isQuit {
		frame := core.NewInputFrame()
		frame.Set(action, false)
		m.game.Step(frame)
		if m.recorder != nil {
			m.recorder.PersistFrom(m.game)
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Set(action, held)
	return m, nil
}

// handleTick runs one simulation step with the pending input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.input)
	m.input.Clear()
	return m, nextFrame(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".brickgame", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until it exits. The high score
// is persisted on the way out.
func Run(game registry.Game, rec *Recorder, cfg core.RuntimeConfig, hold *core.HoldTracker) error {
	model := NewModel(game, rec, cfg, hold)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if rec != nil {
		rec.PersistFrom(game)
	}
	return err
}
