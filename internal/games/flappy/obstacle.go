package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a vertical wall with a passable gap centered at GapY.
// Only Passed changes after construction.
type Obstacle struct {
	X      int  // World-space column
	GapY   int  // Vertical center of the gap
	Size   int  // Gap height
	Passed bool // Whether the player has crossed X (for scoring)
}

// GapSize returns the gap height for an obstacle created at the given score.
// The gap narrows by one every ScorePerShrink points and never drops below MinGapSize.
func GapSize(score int, cfg config.FlappyObstacles) int {
	score = core.Max(score, 0)
	return core.Max(cfg.MinGapSize, cfg.BaseGapSize-score/cfg.ScorePerShrink)
}

// NewObstacle creates an obstacle at world column x with a random gap center.
func NewObstacle(x, score int, rng Random, cfg config.FlappyObstacles) Obstacle {
	return Obstacle{
		X:    x,
		GapY: cfg.MinGapY + rng.Intn(cfg.MaxGapY-cfg.MinGapY),
		Size: GapSize(score, cfg),
	}
}

// GapTop returns the first row inside the gap.
func (o Obstacle) GapTop() int {
	return o.GapY - o.Size/2
}

// GapBottom returns the last row inside the gap.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.Size/2
}

// CollidesWith reports whether the player is in the obstacle's column window
// and outside its gap. tolerance widens the column window on both sides so a
// player moving in whole steps cannot skip over the wall.
func (o Obstacle) CollidesWith(p *Player, tolerance int) bool {
	if core.Abs(p.X-o.X) > tolerance {
		return false
	}
	return p.Y < o.GapTop() || p.Y > o.GapBottom()
}

// TopRect returns the wall above the gap, relative to screen column screenX.
func (o Obstacle) TopRect(screenX int) core.Rect {
	return core.NewRect(screenX, 0, 1, o.GapTop())
}

// BottomRect returns the wall below the gap, relative to screen column screenX.
func (o Obstacle) BottomRect(screenX, screenH int) core.Rect {
	return core.NewRect(screenX, o.GapBottom(), 1, screenH-o.GapBottom())
}

// Render draws the obstacle at its position relative to the player.
func (o Obstacle) Render(dst *core.Screen, playerX int) {
	screenX := o.X - playerX
	dst.DrawRect(o.TopRect(screenX), ObstacleChar, ObstacleFg, ObstacleBg)
	dst.DrawRect(o.BottomRect(screenX, dst.Height()), ObstacleChar, ObstacleFg, ObstacleBg)
}
