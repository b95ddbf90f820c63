package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame cycles per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the coarse status the platform needs after each cycle.
type GameState struct {
	Score    int  // Current score
	Running  bool // Whether the simulation is in its active phase
	GameOver bool // Whether the attempt has reached a terminal outcome
	Passed   bool // Whether the terminal outcome is a pass
}
