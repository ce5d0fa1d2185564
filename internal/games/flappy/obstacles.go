package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Random is the source of randomness for obstacle generation.
// *rand.Rand satisfies it; tests can script exact values.
type Random interface {
	Intn(n int) int
}

// ObstacleManager keeps a runway of obstacles ahead of the player and retires
// the ones left behind. Obstacles are kept in creation order, which is also
// increasing X.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       Random
	cfg       config.FlappyObstacles
	screenW   int
}

// NewObstacleManager creates an empty obstacle manager.
func NewObstacleManager(rng Random, cfg config.FlappyObstacles, screenW int) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rng,
		cfg:       cfg,
		screenW:   screenW,
	}
}

// Reset clears all obstacles and generates a fresh batch starting at startX.
func (om *ObstacleManager) Reset(startX, score int) {
	om.obstacles = om.obstacles[:0]
	om.Generate(startX, score)
}

// Update evicts obstacles a full screen behind the player and generates a new
// batch when the runway ahead is shorter than two screens.
func (om *ObstacleManager) Update(playerX, score int) {
	// Remove obstacles that are a screen width behind
	kept := om.obstacles[:0]
	for _, o := range om.obstacles {
		if o.X > playerX-om.screenW {
			kept = append(kept, o)
		}
	}
	om.obstacles = kept

	if len(om.obstacles) == 0 {
		om.Generate(playerX+om.screenW, score)
		return
	}

	last := om.obstacles[len(om.obstacles)-1]
	if last.X < playerX+2*om.screenW {
		om.Generate(last.X+om.randomDistance(), score)
	}
}

// Generate appends a batch of 2..MaxPerBatch obstacles. The first one sits at
// startX and each following one is a random distance further right. Every
// obstacle in the batch uses the same score for its gap size.
func (om *ObstacleManager) Generate(startX, score int) {
	count := 2 + om.rng.Intn(om.cfg.MaxPerBatch-1)

	x := startX
	for i := 0; i < count; i++ {
		if i > 0 {
			x += om.randomDistance()
		}
		om.obstacles = append(om.obstacles, NewObstacle(x, score, om.rng, om.cfg))
	}
}

// randomDistance returns a spacing in [MinDistance, MaxDistance].
func (om *ObstacleManager) randomDistance() int {
	return om.cfg.MinDistance + om.rng.Intn(om.cfg.MaxDistance-om.cfg.MinDistance+1)
}

// CheckPassed marks every obstacle the player has moved beyond as passed.
// Returns how many obstacles were newly passed by this call.
func (om *ObstacleManager) CheckPassed(p *Player) int {
	passed := 0
	for i := range om.obstacles {
		if !om.obstacles[i].Passed && om.obstacles[i].X < p.X {
			om.obstacles[i].Passed = true
			passed++
		}
	}
	return passed
}

// HitObstacle reports whether the player collides with any live obstacle.
func (om *ObstacleManager) HitObstacle(p *Player) bool {
	for _, o := range om.obstacles {
		if o.CollidesWith(p, om.cfg.HitTolerance) {
			return true
		}
	}
	return false
}

// Render draws the obstacles whose screen column falls in the visible window.
func (om *ObstacleManager) Render(dst *core.Screen, playerX int) {
	for _, o := range om.obstacles {
		screenX := o.X - playerX
		if screenX < om.cfg.VisibleFrom || screenX >= om.screenW {
			continue
		}
		o.Render(dst, playerX)
	}
}

// Obstacles returns the live obstacles in creation order.
func (om *ObstacleManager) Obstacles() []Obstacle {
	return om.obstacles
}

// Len returns the number of live obstacles.
func (om *ObstacleManager) Len() int {
	return len(om.obstacles)
}
