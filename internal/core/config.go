package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 15)
	Seed     int64 // RNG seed for deterministic piece order
}

// DefaultTickRate is the logical tick rate of the simulation.
const DefaultTickRate = 15

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score       int  // Cumulative score
	Level       int  // Current level (0-10)
	RowsCleared int  // Cumulative rows removed
	GameOver    bool // Whether the game has ended
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	// Changed is true when the tick produced a visible change.
	Changed bool

	// Locked is true when the active piece was merged into the board this tick.
	Locked bool

	// RowsRemoved is the number of full rows cleared by this tick's lock (0-4).
	RowsRemoved int
}
