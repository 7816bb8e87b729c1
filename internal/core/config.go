package core

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
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

// Phase is the lifecycle stage of a play session.
type Phase int

const (
	PhaseReady   Phase = iota // created, waiting for the player to start
	PhasePlaying              // clocks and predators are live
	PhaseWon                  // win threshold reached, session stopped
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// GameState is the coarse session status reported to presentation adapters.
type GameState struct {
	Score  int   // Current score
	Phase  Phase // Lifecycle stage
	Paused bool  // Whether the session is paused
}

// Playing reports whether the session should advance this tick.
func (s GameState) Playing() bool {
	return s.Phase == PhasePlaying && !s.Paused
}
