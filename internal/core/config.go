package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
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

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Round ended, waiting for the play-again answer
	Paused   bool    // Whether the game is paused
	Exit     bool    // Player declined to play again; platform should close
	Outcome  Outcome // How the last round ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Outcome is set only on the tick the round ends.
	Outcome Outcome
}

// Game is the contract between a simulation and the platform.
type Game interface {
	Reset(cfg RuntimeConfig)
	Step(in InputFrame) StepResult
	Render(dst *Screen)
	State() GameState
}
