package session

import (
	"time"

	"github.com/vovakirdan/klokkia/internal/challenge"
	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/predator"
)

// ActiveChallenge describes the challenge the player is working on.
type ActiveChallenge struct {
	ClockID     int    `json:"clock_id"`
	State       string `json:"state"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"max_attempts"`
	UsedHint    bool   `json:"used_hint"`
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Phase    string                 `json:"phase"`
	Paused   bool                   `json:"paused"`
	Score    int                    `json:"score"`
	WinScore int                    `json:"win_score"`
	Elapsed  time.Duration          `json:"elapsed"`
	Player   core.Vec2              `json:"player"`
	Clocks   []challenge.Clock      `json:"clocks"`
	Active   *ActiveChallenge       `json:"active,omitempty"`
	Threats  []predator.Threat      `json:"threats"`
	Legend   []predator.LegendEntry `json:"legend"`
	Banner   string                 `json:"banner,omitempty"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    s.phase.String(),
		Paused:   s.clock.Paused(),
		Score:    s.board.Score(),
		WinScore: s.cfg.Challenge.WinScore,
		Elapsed:  s.clock.Elapsed(),
		Player:   s.player,
		Clocks:   s.challenges.Clocks(),
		Threats:  s.predators.Threats(),
		Legend:   s.predators.Legend(),
		Banner:   string(s.predators.Banner()),
	}
	if clk, ok := s.challenges.Active(); ok {
		snap.Active = &ActiveChallenge{
			ClockID:     clk.ID,
			State:       s.challenges.State().String(),
			Attempts:    s.challenges.Attempts(),
			MaxAttempts: s.cfg.Challenge.MaxAttempts,
			UsedHint:    s.challenges.UsedHint(),
		}
	}
	return snap
}

// Result summarizes a session for the leaderboard.
type Result struct {
	Score    int           `json:"score"`
	Won      bool          `json:"won"`
	Correct  int           `json:"correct"`
	Revealed int           `json:"revealed"`
	Hints    int           `json:"hints"`
	Catches  int           `json:"catches"`
	Duration time.Duration `json:"duration"`
}

// Result returns the summary of the session so far.
func (s *Session) Result() Result {
	st := s.challenges.Stats()
	return Result{
		Score:    s.board.Score(),
		Won:      s.board.Won(),
		Correct:  st.Correct,
		Revealed: st.Revealed,
		Hints:    st.Hints,
		Catches:  s.predators.Catches(),
		Duration: s.clock.Elapsed(),
	}
}
