package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel() Model {
	game := flappy.New(config.DefaultFlappyConfig(), rand.New(rand.NewSource(1)))
	return NewModel(game, logging.Discard(), core.DefaultConfig())
}

// send feeds a message to the model and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func startPlaying(t *testing.T) Model {
	t.Helper()
	m := newTestModel()
	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, TickMsg(t0))
	if m.game.Mode() != core.ModePlaying {
		t.Fatalf("mode = %v after pressing p, expected Playing", m.game.Mode())
	}
	return m
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel()

	if !strings.Contains(m.View(), "Welcome to Flappy Dragon") {
		t.Error("view should show the menu")
	}
	if m.screen.Width() != 80 || m.screen.Height() != 50 {
		t.Errorf("screen = %dx%d, expected 80x50", m.screen.Width(), m.screen.Height())
	}
}

func TestModelElapsedTime(t *testing.T) {
	m := startPlaying(t)

	m, _ = send(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if x := m.game.Player().X; x != 5 {
		t.Fatalf("x = %d after 20ms, expected no physics step yet", x)
	}

	m, cmd := send(t, m, TickMsg(t0.Add(40*time.Millisecond)))
	if x := m.game.Player().X; x != 6 {
		t.Errorf("x = %d after 40ms, expected one physics step", x)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelLastKeyWins(t *testing.T) {
	m := startPlaying(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, TickMsg(t0))

	p := m.game.Player()
	if p.X != -1 {
		t.Errorf("x = %d, expected the dash left to apply", p.X)
	}
	if p.V != 0 {
		t.Errorf("v = %v, the earlier flap should be overwritten", p.V)
	}
	if m.pending != core.ActionNone {
		t.Errorf("pending = %v, expected input cleared after the frame", m.pending)
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m := newTestModel()

	m, cmd := send(t, m, runeKey('q'))
	if isQuit(cmd) {
		t.Fatal("q should be delivered to the game on the next frame, not quit immediately")
	}

	m, cmd = send(t, m, TickMsg(t0))
	if !isQuit(cmd) {
		t.Error("expected tea.Quit after the game reports quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitIgnoredWhilePlaying(t *testing.T) {
	m := startPlaying(t)

	m, _ = send(t, m, runeKey('q'))
	m, cmd := send(t, m, TickMsg(t0))
	if isQuit(cmd) {
		t.Error("q should not quit in the middle of a run")
	}
	if m.game.Mode() != core.ModePlaying {
		t.Errorf("mode = %v, expected Playing", m.game.Mode())
	}
}

func TestModelForceQuit(t *testing.T) {
	m := startPlaying(t)

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit in any mode")
	}
}

func TestModelGameOverView(t *testing.T) {
	m := startPlaying(t)

	m.game.Player().Y = 100
	m, _ = send(t, m, TickMsg(t0))

	if m.game.Mode() != core.ModeEnd {
		t.Fatalf("mode = %v, expected End", m.game.Mode())
	}
	if m.prevMode != core.ModeEnd {
		t.Errorf("prevMode = %v, expected the transition to be tracked", m.prevMode)
	}
	if !strings.Contains(m.View(), "You are dead!") {
		t.Error("view should show the end screen")
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel()

	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	if cmd != nil {
		t.Error("resize should not schedule commands")
	}
	if m.help.Width != 120 {
		t.Errorf("help width = %d, expected 120", m.help.Width)
	}
	if m.screen.Width() != 80 {
		t.Error("the playfield keeps its configured size")
	}
}
