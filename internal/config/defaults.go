package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in game rules.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:   80,
			Height:  50,
			FrameMs: 32.5,
		},
		Physics: FlappyPhysics{
			Gravity:      0.1,
			MaxFallSpeed: 2.0,
			FlapImpulse:  -2.0,
			ForwardStep:  1,
		},
		Player: FlappyPlayer{
			StartX:     5,
			StartY:     25,
			DashOffset: 6,
		},
		Obstacles: FlappyObstacles{
			MinDistance:    20,
			MaxDistance:    30,
			MaxPerBatch:    5,
			MinGapY:        10,
			MaxGapY:        40,
			BaseGapSize:    20,
			ScorePerShrink: 5,
			MinGapSize:     2,
			HitTolerance:   1,
			VisibleFrom:    -5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
