package core

// RuntimeConfig contains configuration passed to a platform shell at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (ignored by the window shell)
	ScreenH  int // Terminal height in characters (ignored by the window shell)
	TickRate int // Initial frames per second; the settings screen may change it
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
