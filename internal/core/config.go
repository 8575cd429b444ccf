package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use it to describe the display; the simulation uses TickRate to
// derive its simulated frame time and Seed for deterministic spawning.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height
	TickRate int   // Simulation frames per second (default 60)
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

// GameState is the frontend-facing summary of a run.
type GameState struct {
	Score    int  // Current score
	Paused   bool // Whether the run is paused
	Crashing bool // Termination triggered, freeze pending
	GameOver bool // Whether the run has ended (terminal)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
