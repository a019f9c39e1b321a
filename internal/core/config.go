package core

// RuntimeConfig contains configuration passed to a run at start.
// The maze core uses it for layout and for deterministic wanderer movement.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the run, 0 means "pick one from the clock"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 25,
		Seed:    0, // resolved in the platform layer
	}
}
