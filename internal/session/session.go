// Package session wires the clock challenges, the predator scheduler and the
// shared score into one play session driven by frames from a movement
// collaborator.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/klokkia/internal/challenge"
	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/predator"
	"github.com/vovakirdan/klokkia/internal/scoring"
	"github.com/vovakirdan/klokkia/internal/timing"
)

// Config collects the rules of a session.
type Config struct {
	Challenge        challenge.Config
	Predator         predator.Config
	PredatorsEnabled bool
	Spawn            core.Vec2
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		Challenge:        challenge.DefaultConfig(),
		Predator:         predator.DefaultConfig(),
		PredatorsEnabled: true,
		Spawn:            core.V(0, 15),
	}
}

// Deps are the session's external collaborators.
type Deps struct {
	Speaker challenge.Speaker // optional
	Seed    int64             // 0 means seed from the current time
	Logger  *log.Logger       // optional
}

// Frame is what the movement collaborator reports each tick.
type Frame struct {
	Player core.Vec2
	Delta  time.Duration
}

// Session is one play session. It is driven from a single goroutine; the
// adapters that share it across goroutines must serialize access.
type Session struct {
	cfg    Config
	logger *log.Logger

	phase  core.Phase
	clock  timing.SessionClock
	sched  timing.Scheduler
	board  scoring.Board
	queue  events.Queue
	player core.Vec2

	challenges *challenge.Controller
	predators  *predator.Scheduler
}

// New creates a session in the ready phase.
func New(cfg Config, deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := deps.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{cfg: cfg, logger: logger, player: cfg.Spawn}
	s.challenges = challenge.New(cfg.Challenge, challenge.Deps{
		Board:     &s.board,
		Scheduler: &s.sched,
		Queue:     &s.queue,
		Speaker:   deps.Speaker,
		Rand:      rng,
		Logger:    logger.WithPrefix("challenge"),
	})
	s.predators = predator.New(cfg.Predator, predator.Deps{
		Board:     &s.board,
		Scheduler: &s.sched,
		Queue:     &s.queue,
		Rand:      rng,
		Logger:    logger.WithPrefix("predator"),
	})
	s.queue.Drain()
	return s
}

// Start begins a fresh session from the ready or won phase. Score, clocks,
// latches and legend are reset.
func (s *Session) Start() {
	if s.phase == core.PhasePlaying {
		return
	}
	s.sched.CancelAll()
	s.sched = timing.Scheduler{}
	s.clock.Reset()
	s.board.Reset()
	s.challenges.Reset()
	s.predators.Reset()
	s.player = s.cfg.Spawn
	s.phase = core.PhasePlaying

	s.queue.Push(events.ScoreChangedEvent{Score: 0})
	s.queue.Push(events.PlayerResetEvent{Position: s.cfg.Spawn})
	s.pushPhase()
	s.logger.Info("session started")
}

// Pause suspends game time, predators and challenges.
func (s *Session) Pause() {
	if s.phase != core.PhasePlaying || s.clock.Paused() {
		return
	}
	s.clock.Pause()
	s.pushPhase()
	s.logger.Debug("paused", "elapsed", s.clock.Elapsed())
}

// Resume continues a paused session.
func (s *Session) Resume() {
	if s.phase != core.PhasePlaying || !s.clock.Paused() {
		return
	}
	s.clock.Resume()
	s.pushPhase()
	s.logger.Debug("resumed", "elapsed", s.clock.Elapsed())
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() {
	if s.clock.Paused() {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Step advances the session by one frame and returns the events emitted since
// the previous call. Nothing advances unless the session is playing and not
// paused.
func (s *Session) Step(f Frame) []events.Event {
	if !s.State().Playing() {
		return s.queue.Drain()
	}

	dt := s.clock.Advance(f.Delta)
	s.sched.Advance(dt)

	s.player = f.Player
	s.challenges.Update(s.player)
	if s.cfg.PredatorsEnabled {
		s.player = s.predators.Update(s.clock.Elapsed(), dt, s.player)
	}
	s.checkWon()
	return s.queue.Drain()
}

// Submit checks an answer for the active clock.
func (s *Session) Submit(text string) challenge.Outcome {
	if !s.State().Playing() {
		return challenge.OutcomeIgnored
	}
	out := s.challenges.Submit(text)
	s.checkWon()
	return out
}

// RequestHint plays the active clock's phrase and lowers its reward.
func (s *Session) RequestHint() {
	if !s.State().Playing() {
		return
	}
	s.challenges.RequestHint()
}

// Events drains the pending events without advancing the session.
func (s *Session) Events() []events.Event {
	return s.queue.Drain()
}

func (s *Session) checkWon() {
	if s.phase != core.PhasePlaying || !s.board.Won() {
		return
	}
	s.phase = core.PhaseWon
	s.sched.CancelAll()
	s.pushPhase()
	s.logger.Info("session won", "score", s.board.Score(), "elapsed", s.clock.Elapsed())
}

func (s *Session) pushPhase() {
	s.queue.Push(events.PhaseEvent{Phase: s.phase.String(), Paused: s.clock.Paused()})
}

// State returns the coarse session status.
func (s *Session) State() core.GameState {
	return core.GameState{Score: s.board.Score(), Phase: s.phase, Paused: s.clock.Paused()}
}

// Player returns the player position after the last step.
func (s *Session) Player() core.Vec2 {
	return s.player
}

// Elapsed returns the game time of the session, excluding paused time.
func (s *Session) Elapsed() time.Duration {
	return s.clock.Elapsed()
}
