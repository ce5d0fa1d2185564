// Package config provides YAML-based configuration loading for the flappy game.
package config

// FlappyConfig contains all tunable rules of the game.
type FlappyConfig struct {
	Screen    FlappyScreen    `yaml:"screen"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
}

// FlappyScreen defines the play area and frame pacing.
type FlappyScreen struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	FrameMs float64 `yaml:"frame_ms"` // Accumulated time needed for one physics step
}

// FlappyPhysics defines physics parameters for the player.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Velocity added per physics step
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set by a flap (negative = up)
	ForwardStep  int     `yaml:"forward_step"`   // Horizontal advance per physics step
}

// FlappyPlayer defines where the player spawns and how far a dash moves it.
type FlappyPlayer struct {
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	DashOffset int `yaml:"dash_offset"`
}

// FlappyObstacles defines obstacle generation and collision parameters.
type FlappyObstacles struct {
	MinDistance    int `yaml:"min_distance"`     // Smallest gap between consecutive obstacles
	MaxDistance    int `yaml:"max_distance"`     // Largest gap between consecutive obstacles
	MaxPerBatch    int `yaml:"max_per_batch"`    // Upper bound of obstacles per generated batch
	MinGapY        int `yaml:"min_gap_y"`        // Lowest gap center (inclusive)
	MaxGapY        int `yaml:"max_gap_y"`        // Highest gap center (exclusive)
	BaseGapSize    int `yaml:"base_gap_size"`    // Gap height at score 0
	ScorePerShrink int `yaml:"score_per_shrink"` // Points needed to shrink the gap by one
	MinGapSize     int `yaml:"min_gap_size"`     // Gap height floor
	HitTolerance   int `yaml:"hit_tolerance"`    // Horizontal collision window around an obstacle
	VisibleFrom    int `yaml:"visible_from"`     // Leftmost screen column an obstacle is drawn at
}
