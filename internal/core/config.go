package core

// RuntimeConfig contains what a host passes to the board view at startup.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	FPS     int    // Animation frames per second (flash, floating text)
	Seed    int64  // RNG seed for board generation, 0 means time-based
	Player  string // Name reported with results
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     30,
	}
}
