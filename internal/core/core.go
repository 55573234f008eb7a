// Package core provides the fundamental types shared by the game engine
// and the terminal platform. It has no external dependencies (especially
// no Bubble Tea) so the game logic stays pure and testable.
package core

// RuntimeConfig is passed to a game at initialization. Games use it to
// adapt to the screen size and to seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the platform picks a time-based seed
	}
}

// GameState is the platform-visible status of a game, returned by
// Game.State() after every tick.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starting at 0
	Lines    int  // Total rows cleared
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
