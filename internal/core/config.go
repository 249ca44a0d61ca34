package core

// DefaultTickRate is the simulation rate when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands a game when a session begins.
type RuntimeConfig struct {
	ScreenW, ScreenH int
	TickRate         int   // ticks per second
	Seed             int64 // 0 keeps the game's current randomizer
}

// WithDefaults fills unset fields.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = 80, 24
	}
	return c
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Paused    bool
}

// StepResult is returned by a game's Step.
type StepResult struct {
	State GameState
}
