package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to lay out the board and for deterministic population.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for the initial board
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Removed   int  // Tiles cleared so far
	Remaining int  // Tiles still on the board
	Matches   int  // Successful match checks
	Misses    int  // Failed match checks
	GameOver  bool // Whether the game has ended
	Won       bool // Board cleared; only meaningful when GameOver
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
