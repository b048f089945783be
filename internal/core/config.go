package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// TickDT returns the duration of one tick in seconds, clamped to maxDT.
func (c RuntimeConfig) TickDT(maxDT float32) float32 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	dt := 1 / float32(rate)
	if dt > maxDT {
		dt = maxDT
	}
	return dt
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	Level    int  // Zero-based level index
	Lives    int  // Reserve lives
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused by the player
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
