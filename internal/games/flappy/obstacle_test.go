package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// scriptedRand returns queued values (modulo n) and records every bound it was asked for.
type scriptedRand struct {
	values []int
	bounds []int
}

func (r *scriptedRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func obstacleConfig() config.FlappyObstacles {
	return config.DefaultFlappyConfig().Obstacles
}

func TestGapSize(t *testing.T) {
	cfg := obstacleConfig()
	tests := []struct {
		score int
		want  int
	}{
		{0, 20},
		{4, 20},
		{5, 19},
		{44, 12},
		{89, 3},
		{90, 2},
		{1000, 2},
		{-10, 20},
	}

	for _, tc := range tests {
		if got := GapSize(tc.score, cfg); got != tc.want {
			t.Errorf("GapSize(%d) = %d, expected %d", tc.score, got, tc.want)
		}
	}
}

func TestGapSizeFloorAndMonotonic(t *testing.T) {
	cfg := obstacleConfig()
	prev := GapSize(0, cfg)
	for score := 0; score <= 2000; score++ {
		size := GapSize(score, cfg)
		if size < 2 {
			t.Fatalf("GapSize(%d) = %d, below the floor of 2", score, size)
		}
		if size > prev {
			t.Fatalf("GapSize(%d) = %d grew from %d", score, size, prev)
		}
		prev = size
	}
}

func TestNewObstacleGapRange(t *testing.T) {
	cfg := obstacleConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		o := NewObstacle(100, 12, rng, cfg)
		if o.GapY < 10 || o.GapY >= 40 {
			t.Fatalf("GapY = %d, expected in [10, 40)", o.GapY)
		}
		if o.X != 100 || o.Size != 18 || o.Passed {
			t.Fatalf("unexpected obstacle %+v", o)
		}
	}
}

func TestNewObstacleScripted(t *testing.T) {
	cfg := obstacleConfig()

	rng := &scriptedRand{values: []int{0, 29}}
	low := NewObstacle(80, 0, rng, cfg)
	high := NewObstacle(80, 0, rng, cfg)

	if low.GapY != 10 || high.GapY != 39 {
		t.Errorf("GapY = %d and %d, expected 10 and 39", low.GapY, high.GapY)
	}
	for _, n := range rng.bounds {
		if n != 30 {
			t.Errorf("gap center drawn with Intn(%d), expected Intn(30)", n)
		}
	}
}

func TestObstacleCollidesWith(t *testing.T) {
	// Gap rows 20..30 inclusive
	o := Obstacle{X: 100, GapY: 25, Size: 10}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside gap", 100, 25, false},
		{"gap top edge", 100, 20, false},
		{"gap bottom edge", 100, 30, false},
		{"above gap", 100, 19, true},
		{"below gap", 100, 31, true},
		{"top of screen", 100, 0, true},
		{"left tolerance", 99, 0, true},
		{"right tolerance", 101, 45, true},
		{"left of window", 98, 0, false},
		{"right of window", 102, 45, false},
		{"far away", 10, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer(tc.x, tc.y)
			if got := o.CollidesWith(p, 1); got != tc.want {
				t.Errorf("CollidesWith(x=%d, y=%d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestObstacleNoCollisionOutsideWindow(t *testing.T) {
	o := Obstacle{X: 50, GapY: 25, Size: 4}
	for y := -5; y < 60; y++ {
		for _, x := range []int{0, 47, 48, 52, 53, 200} {
			if o.CollidesWith(newTestPlayer(x, y), 1) {
				t.Fatalf("player at (%d, %d) is outside the window but collided", x, y)
			}
		}
	}
}

func TestObstacleRender(t *testing.T) {
	o := Obstacle{X: 30, GapY: 25, Size: 10}
	screen := core.NewScreen(80, 50)

	o.Render(screen, 20) // screen column 10

	for y := 0; y < 50; y++ {
		c := screen.GetCell(10, y)
		wantWall := y < 20 || y >= 30
		if wantWall && (c.Rune != ObstacleChar || c.Fg != ObstacleFg || c.Bg != ObstacleBg) {
			t.Errorf("row %d: expected wall glyph, got %+v", y, c)
		}
		if !wantWall && c.Rune != ' ' {
			t.Errorf("row %d: expected open gap, got %q", y, c.Rune)
		}
	}

	if screen.Get(9, 0) != ' ' || screen.Get(11, 0) != ' ' {
		t.Error("obstacle should be one column wide")
	}
}
