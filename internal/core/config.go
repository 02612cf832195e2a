package core

// RuntimeConfig is passed to demos on reset.
// Demos use it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Dt returns the fixed timestep in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// GameState is the demo status reported to the platform.
type GameState struct {
	Score      int  // Current score
	Collisions int  // Collision events handled since reset
	GameOver   bool // Whether the run has ended
	Paused     bool // Whether the simulation is paused
}

// StepResult is returned by Demo.Step after each simulation tick.
type StepResult struct {
	State GameState
}
