// Package challenge implements the per-clock challenge state machine:
// proximity, attempts, hints, scoring and clock replacement.
package challenge

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/dutch"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/scoring"
	"github.com/vovakirdan/klokkia/internal/timing"
)

// Speaker plays a Dutch phrase aloud. Implementations must not block the
// caller for the duration of playback.
type Speaker interface {
	Speak(text string) error
}

// State is the controller's position in the challenge state machine.
type State int

const (
	StateIdle State = iota
	StateActive
	StateResolvedCorrect
	StateResolvedIncorrect
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateResolvedCorrect:
		return "resolved-correct"
	case StateResolvedIncorrect:
		return "resolved-incorrect"
	default:
		return "unknown"
	}
}

// Feedback messages.
const (
	MsgCorrect         = "Heel goed! Uitstekend!"
	MsgCorrectWithHint = "Goed! (+1 punt - je gebruikte hulp)"
	msgRetry           = "Probeer het nog eens! (Nog %d keer)"
	msgReveal          = "Het goede antwoord is: %s"
)

// Config holds the tunables of the challenge controller.
type Config struct {
	MaxAttempts     int
	ProximityRadius float64
	CorrectDelay    time.Duration
	RevealDelay     time.Duration
	RewardCorrect   uint
	RewardWithHint  uint
	WinScore        int
	Slots           []core.Vec2
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:     3,
		ProximityRadius: 5,
		CorrectDelay:    2000 * time.Millisecond,
		RevealDelay:     3000 * time.Millisecond,
		RewardCorrect:   scoring.RewardCorrect,
		RewardWithHint:  scoring.RewardWithHint,
		WinScore:        scoring.DefaultWinScore,
		Slots:           DefaultSlots,
	}
}

// Deps are the collaborators shared with the rest of the session.
type Deps struct {
	Board     *scoring.Board
	Scheduler *timing.Scheduler
	Queue     *events.Queue
	Speaker   Speaker // optional
	Rand      *rand.Rand
	Logger    *log.Logger // optional
}

// Outcome describes what a submission did.
type Outcome int

const (
	OutcomeIgnored Outcome = iota // no active clock
	OutcomeCorrect
	OutcomeRetry
	OutcomeRevealed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeRetry:
		return "retry"
	case OutcomeRevealed:
		return "revealed"
	default:
		return "ignored"
	}
}

// Stats counts what happened during a session.
type Stats struct {
	Correct  int `json:"correct"`
	Revealed int `json:"revealed"`
	Hints    int `json:"hints"`
}

// Controller tracks which clock is active and resolves answers for it.
// At most one clock is active at a time.
type Controller struct {
	cfg    Config
	deps   Deps
	logger *log.Logger

	clocks   []Clock
	state    State
	active   int // index into clocks, -1 when none
	attempts int
	usedHint bool
	pending  *timing.Handle
	stats    Stats
}

// New creates a controller and fills its slots with fresh clocks.
func New(cfg Config, deps Deps) *Controller {
	if len(cfg.Slots) == 0 {
		cfg.Slots = DefaultSlots
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{cfg: cfg, deps: deps, logger: logger, active: -1}
	c.Reset()
	return c
}

// Reset cancels pending replacements, redraws every clock and returns to Idle.
// Even slots start with a classic face, odd slots with a digital one.
func (c *Controller) Reset() {
	c.pending.Cancel()
	c.pending = nil
	c.clocks = make([]Clock, len(c.cfg.Slots))
	for i, pos := range c.cfg.Slots {
		style := StyleDigital
		if i%2 == 0 {
			style = StyleClassic
		}
		c.clocks[i] = NewClock(i, pos, dutch.RandomTime(c.deps.Rand), style)
	}
	c.state = StateIdle
	c.active = -1
	c.attempts = 0
	c.usedHint = false
	c.stats = Stats{}
}

// Nearest returns the closest clock within the proximity radius of pos.
func (c *Controller) Nearest(pos core.Vec2) (Clock, bool) {
	best := -1
	bestDist := c.cfg.ProximityRadius
	for i, clk := range c.clocks {
		if d := clk.Position.Dist(pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Clock{}, false
	}
	return c.clocks[best], true
}

// Update resolves proximity for the player's current position.
// It is a no-op while a resolution is waiting for its replacement.
func (c *Controller) Update(player core.Vec2) {
	if c.state == StateResolvedCorrect || c.state == StateResolvedIncorrect {
		return
	}
	if clk, ok := c.Nearest(player); ok {
		c.ProximityEnter(clk.ID)
		return
	}
	c.ProximityExit()
}

// ProximityEnter activates the clock with the given id, starting a fresh
// challenge unless that clock is already the active one.
func (c *Controller) ProximityEnter(id int) {
	if id < 0 || id >= len(c.clocks) {
		return
	}
	switch c.state {
	case StateIdle:
	case StateActive:
		if c.active == id {
			return
		}
	default:
		return
	}
	c.state = StateActive
	c.active = id
	c.attempts = 0
	c.usedHint = false
	c.deps.Queue.Push(events.ChallengeStartedEvent{ClockID: id})
	c.logger.Debug("challenge started", "clock", id, "time", c.clocks[id].Time)
}

// ProximityExit discards the active challenge without scoring.
func (c *Controller) ProximityExit() {
	if c.state != StateActive {
		return
	}
	id := c.active
	c.state = StateIdle
	c.active = -1
	c.attempts = 0
	c.usedHint = false
	c.deps.Queue.Push(events.ChallengeClosedEvent{ClockID: id})
	c.logger.Debug("challenge left", "clock", id)
}

// Submit checks an answer against the active clock. Without an active clock
// the call does nothing.
func (c *Controller) Submit(text string) Outcome {
	if c.state != StateActive {
		return OutcomeIgnored
	}
	clk := c.clocks[c.active]
	c.attempts++

	if dutch.IsEquivalent(text, clk.Phrase) {
		points, msg := c.cfg.RewardCorrect, MsgCorrect
		if c.usedHint {
			points, msg = c.cfg.RewardWithHint, MsgCorrectWithHint
		}
		c.deps.Board.Award(points)
		c.stats.Correct++
		c.deps.Queue.Push(events.FeedbackEvent{Category: events.CategoryCorrect, Text: msg})
		c.deps.Queue.Push(events.ScoreChangedEvent{Score: c.deps.Board.Score(), Delta: int(points)})
		if c.deps.Board.CheckWin(c.cfg.WinScore) {
			c.deps.Queue.Push(events.WonEvent{Score: c.deps.Board.Score()})
			c.logger.Info("win threshold reached", "score", c.deps.Board.Score())
		}
		c.logger.Debug("answer correct", "clock", clk.ID, "points", points, "attempts", c.attempts)
		c.resolve(StateResolvedCorrect, c.cfg.CorrectDelay)
		return OutcomeCorrect
	}

	if c.attempts < c.cfg.MaxAttempts {
		c.deps.Queue.Push(events.FeedbackEvent{
			Category: events.CategoryIncorrect,
			Text:     fmt.Sprintf(msgRetry, c.cfg.MaxAttempts-c.attempts),
		})
		c.logger.Debug("answer wrong", "clock", clk.ID, "attempts", c.attempts)
		return OutcomeRetry
	}

	c.stats.Revealed++
	c.deps.Queue.Push(events.FeedbackEvent{
		Category: events.CategoryHintReveal,
		Text:     fmt.Sprintf(msgReveal, clk.Phrase),
	})
	c.speak(clk.Phrase)
	c.logger.Debug("answer revealed", "clock", clk.ID, "phrase", clk.Phrase)
	c.resolve(StateResolvedIncorrect, c.cfg.RevealDelay)
	return OutcomeRevealed
}

// RequestHint marks the challenge as helped and plays the phrase. The reward
// is reduced even when playback fails.
func (c *Controller) RequestHint() {
	if c.state != StateActive {
		return
	}
	if !c.usedHint {
		c.stats.Hints++
	}
	c.usedHint = true
	c.speak(c.clocks[c.active].Phrase)
}

func (c *Controller) speak(phrase string) {
	if c.deps.Speaker == nil {
		return
	}
	if err := c.deps.Speaker.Speak(phrase); err != nil {
		c.logger.Debug("speech unavailable", "err", err)
	}
}

func (c *Controller) resolve(state State, delay time.Duration) {
	c.state = state
	slot := c.active
	c.pending = c.deps.Scheduler.ScheduleOnce(delay, func() {
		c.replace(slot)
	})
}

// replace draws a new time and style for the slot and returns to Idle.
func (c *Controller) replace(slot int) {
	old := c.clocks[slot]
	style := StyleDigital
	if c.deps.Rand.Intn(2) == 0 {
		style = StyleClassic
	}
	c.clocks[slot] = NewClock(old.ID, old.Position, dutch.RandomTime(c.deps.Rand), style)
	c.state = StateIdle
	c.active = -1
	c.attempts = 0
	c.usedHint = false
	c.pending = nil

	nc := c.clocks[slot]
	c.deps.Queue.Push(events.ChallengeClosedEvent{ClockID: nc.ID})
	c.deps.Queue.Push(events.ClockReplacedEvent{ClockID: nc.ID, Time: nc.Time, Style: string(nc.Style)})
	c.logger.Debug("clock replaced", "clock", nc.ID, "time", nc.Time, "style", nc.Style)
}

// Clocks returns a copy of the current clock slots.
func (c *Controller) Clocks() []Clock {
	out := make([]Clock, len(c.clocks))
	copy(out, c.clocks)
	return out
}

// Active returns the active clock, if any. A resolved clock stays reported
// until its replacement.
func (c *Controller) Active() (Clock, bool) {
	if c.active < 0 {
		return Clock{}, false
	}
	return c.clocks[c.active], true
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Attempts returns the number of answers submitted for the active clock.
func (c *Controller) Attempts() int {
	return c.attempts
}

// UsedHint reports whether a hint was requested for the active clock.
func (c *Controller) UsedHint() bool {
	return c.usedHint
}

// Stats returns the session counters.
func (c *Controller) Stats() Stats {
	return c.stats
}
