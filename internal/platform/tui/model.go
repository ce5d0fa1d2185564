package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	lastTick time.Time
	pending  core.Action // Last game key pressed since the previous frame
	prevMode core.Mode
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game *flappy.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	screenCfg := game.Config().Screen
	return Model{
		game:     game,
		screen:   core.NewScreen(screenCfg.Width, screenCfg.Height),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		config:   cfg,
		prevMode: game.Mode(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next frame. Later keys overwrite
// earlier ones so a frame sees at most one action.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.logger.Info("quit", "reason", "interrupt", "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := 0.0
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	out := m.game.Tick(core.FrameInput{Action: m.pending, ElapsedMs: elapsed})
	m.pending = core.ActionNone

	if out.Mode != m.prevMode {
		m.logger.Debug("mode changed", "from", m.prevMode, "to", out.Mode)
		if out.Mode == core.ModeEnd {
			m.logger.Info("game over", "score", out.Score, "collided", out.Collided, "x", out.PlayerX, "y", out.PlayerY)
		}
		m.prevMode = out.Mode
	}

	if out.Quit {
		m.logger.Info("quit", "reason", "player", "mode", out.Mode)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text under the XDG state directory.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	name := fmt.Sprintf("flappy/screenshots/%s.txt", time.Now().Format("20060102_150405"))
	path, err := xdg.StateFile(name)
	if err != nil {
		return "", fmt.Errorf("resolve screenshot path: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
