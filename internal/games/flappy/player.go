package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Direction selects which way a dash nudges the player.
type Direction int

const (
	DashLeft  Direction = -1
	DashRight Direction = 1
)

// Player is the bird: a point in world space with a vertical velocity.
// Y grows downwards; the top of the screen is y = 0.
type Player struct {
	X int
	Y int
	V float64

	physics config.FlappyPhysics
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int, physics config.FlappyPhysics) *Player {
	return &Player{X: x, Y: y, physics: physics}
}

// AdvancePhysics applies one physics step: gravity up to terminal velocity,
// vertical movement by the truncated velocity, and constant forward flight.
func (p *Player) AdvancePhysics() {
	p.V = math.Min(p.V+p.physics.Gravity, p.physics.MaxFallSpeed)
	p.Y += int(p.V)
	p.X += p.physics.ForwardStep
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap replaces the current velocity with the upward flap impulse.
func (p *Player) Flap() {
	p.V = p.physics.FlapImpulse
}

// Dash nudges the player horizontally by offset cells. The result is not bounded.
func (p *Player) Dash(dir Direction, offset int) {
	p.X += int(dir) * offset
}
