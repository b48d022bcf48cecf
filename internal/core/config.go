package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Lines    int  // Rows cleared so far
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Schedule tells the host when the game wants its next tick.
// The host owns the timer; a game never re-arms itself.
type Schedule struct {
	Interval time.Duration
	Rearm    bool // false once the game can no longer advance
}

// StepResult is returned after each input or timer step.
type StepResult struct {
	State    GameState
	Schedule Schedule
	Locked   bool // A piece was committed to the board during this step
	Cleared  int  // Rows removed during this step
}
