package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW   int  // Screen width in characters
	ScreenH   int  // Screen height in characters
	TickRate  int  // Ticks per second requested from the platform (default 60)
	FixedStep bool // Feed 1/TickRate to the simulation instead of wall-clock time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickInterval returns the wall-clock duration between two ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState reports the run status to the platform after each tick.
type GameState struct {
	Outcome  string        // "playing", "lost" or "won"
	Finished bool          // The run reached a terminal state
	Paused   bool          // The simulation is paused
	Elapsed  time.Duration // Simulated time since the run started
	Frames   int           // Simulation steps since the run started
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Ended is true only on the tick the run transitioned to a terminal state.
	Ended bool
}
