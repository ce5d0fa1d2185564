package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// UserConfigRelPath is the config file location relative to the XDG config directories.
const UserConfigRelPath = "flappy/flappy.yaml"

// LocalConfigPath is checked when no user config exists.
const LocalConfigPath = "configs/flappy.yaml"

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the fields it changes.
func Load(customPath string) (FlappyConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file the configuration came from.
// The source is "embedded" when no file was found.
func LoadWithSource(customPath string) (FlappyConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(UserConfigRelPath); err == nil {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, cfg.Validate()
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(LocalConfigPath); err == nil {
		return cfg, LocalConfigPath, cfg.Validate()
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse overlays YAML data on the default configuration.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	s, p, o := c.Screen, c.Physics, c.Obstacles

	switch {
	case s.Width <= 0 || s.Height <= 0:
		return invalid("screen must be positive, got %dx%d", s.Width, s.Height)
	case s.FrameMs <= 0:
		return invalid("frame_ms must be positive, got %v", s.FrameMs)
	case p.Gravity <= 0:
		return invalid("gravity must be positive, got %v", p.Gravity)
	case p.MaxFallSpeed <= 0:
		return invalid("max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	case p.FlapImpulse >= 0:
		return invalid("flap_impulse must point up (negative), got %v", p.FlapImpulse)
	case p.ForwardStep < 0:
		return invalid("forward_step must not be negative, got %d", p.ForwardStep)
	case o.MinDistance < 1 || o.MaxDistance < o.MinDistance:
		return invalid("obstacle distance range [%d, %d] is empty", o.MinDistance, o.MaxDistance)
	case o.MaxPerBatch < 2:
		return invalid("max_per_batch must be at least 2, got %d", o.MaxPerBatch)
	case o.MinGapY < 0 || o.MaxGapY <= o.MinGapY:
		return invalid("gap center range [%d, %d) is empty", o.MinGapY, o.MaxGapY)
	case o.MinGapSize < 2:
		return invalid("min_gap_size must be at least 2, got %d", o.MinGapSize)
	case o.BaseGapSize < o.MinGapSize:
		return invalid("base_gap_size %d is below min_gap_size %d", o.BaseGapSize, o.MinGapSize)
	case o.ScorePerShrink < 1:
		return invalid("score_per_shrink must be at least 1, got %d", o.ScorePerShrink)
	case o.HitTolerance < 0:
		return invalid("hit_tolerance must not be negative, got %d", o.HitTolerance)
	}
	return nil
}
