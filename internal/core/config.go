package core

// RuntimeConfig describes the environment a play session runs in.
// It is filled by the command layer (or the SSH server) and handed to the
// frontend together with the game configuration.
type RuntimeConfig struct {
	ScreenW int    // Terminal width in characters (terminal frontend only)
	ScreenH int    // Terminal height in characters (terminal frontend only)
	Seed    int64  // RNG seed for the randomizer, 0 means time-based
	User    string // Who is playing, recorded in session history
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
		User:    "local",
	}
}
