// Package flappy implements a Flappy Bird-style game.
// The player flies right at constant speed and must pass through the gaps of
// randomly generated walls. The package is a pure simulation: the host feeds
// one FrameInput per frame and draws the result with Render.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the top-level state machine: menu, playing and end screens.
type Game struct {
	mode      core.Mode
	player    *Player
	obstacles *ObstacleManager
	frameTime float64 // Milliseconds accumulated towards the next physics step
	score     int
	collided  bool
	cfg       config.FlappyConfig
}

// New creates a game sitting in the menu.
func New(cfg config.FlappyConfig, rng Random) *Game {
	return &Game{
		mode:      core.ModeMenu,
		player:    NewPlayer(cfg.Player.StartX, cfg.Player.StartY, cfg.Physics),
		obstacles: NewObstacleManager(rng, cfg.Obstacles, cfg.Screen.Width),
		cfg:       cfg,
	}
}

// Restart begins a new run: fresh player, zero score, new obstacles one screen ahead.
func (g *Game) Restart() {
	g.player = NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Physics)
	g.frameTime = 0
	g.score = 0
	g.collided = false
	g.obstacles.Reset(g.cfg.Screen.Width, g.score)
	g.mode = core.ModePlaying
}

// Tick advances the game by one host frame.
func (g *Game) Tick(in core.FrameInput) core.FrameOutput {
	quit := false

	switch g.mode {
	case core.ModeMenu, core.ModeEnd:
		quit = g.tickScreen(in)
	case core.ModePlaying:
		g.tickPlaying(in)
	}

	return core.FrameOutput{
		Mode:     g.mode,
		Score:    g.score,
		PlayerX:  g.player.X,
		PlayerY:  g.player.Y,
		Collided: g.collided,
		Quit:     quit,
	}
}

// tickScreen handles the menu and end screens. Returns true on a quit request.
func (g *Game) tickScreen(in core.FrameInput) bool {
	switch in.Action {
	case core.ActionConfirm:
		g.Restart()
	case core.ActionQuit:
		return true
	}
	return false
}

func (g *Game) tickPlaying(in core.FrameInput) {
	g.frameTime += in.ElapsedMs
	if g.frameTime > g.cfg.Screen.FrameMs {
		g.frameTime = 0
		g.player.AdvancePhysics()
	}

	switch in.Action {
	case core.ActionFlap:
		g.player.Flap()
	case core.ActionDashLeft:
		g.player.Dash(DashLeft, g.cfg.Player.DashOffset)
	case core.ActionDashRight:
		g.player.Dash(DashRight, g.cfg.Player.DashOffset)
	}

	// One point per frame with a pass, however many walls were crossed
	if g.obstacles.CheckPassed(g.player) > 0 {
		g.score++
	}

	g.obstacles.Update(g.player.X, g.score)

	g.collided = g.obstacles.HitObstacle(g.player)
	if g.player.Y > g.cfg.Screen.Height || g.collided {
		g.mode = core.ModeEnd
	}
}

// Mode returns the current mode.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Player returns the current player.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the obstacle manager.
func (g *Game) Obstacles() *ObstacleManager {
	return g.obstacles
}

// Config returns the rules this game was created with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
