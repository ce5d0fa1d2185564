package core

// Mode is the top-level state of a game session.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// FrameInput is everything the host supplies for one frame.
type FrameInput struct {
	Action    Action  // At most one control input per frame
	ElapsedMs float64 // Wall time since the previous frame, in milliseconds
}

// FrameOutput is what the game reports back after one frame.
type FrameOutput struct {
	Mode     Mode
	Score    int
	PlayerX  int
	PlayerY  int
	Collided bool // Player touched an obstacle this frame
	Quit     bool // Player asked to leave the game
}

// RuntimeConfig contains host settings that are not part of the game rules.
type RuntimeConfig struct {
	TickRate int   // Frames per second requested from the host loop
	Seed     int64 // RNG seed for obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
