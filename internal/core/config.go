package core

// RuntimeConfig is passed to Game.Reset.
// The seed makes a round reproducible for a given input sequence.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalized returns a copy with unset fields replaced by defaults.
// The seed is left untouched.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// GameState is what a game reports back to the platform after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool // Also set while the window is too small to play
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
