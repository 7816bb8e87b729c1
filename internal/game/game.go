// Package game is the terminal movement collaborator of a klokkia session:
// it turns key input into player movement, feeds frames to the session and
// keeps the presentation state (feedback, banners) the renderer needs.
package game

import (
	"time"

	"github.com/vovakirdan/klokkia/internal/challenge"
	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/session"
)

// Options configures movement and the session a Game drives.
type Options struct {
	Session   session.Config
	Deps      session.Deps
	MoveSpeed float64 // units per second
	Bound     float64 // half-width of the walkable area
}

// DefaultOptions returns the standard movement rules.
func DefaultOptions() Options {
	return Options{
		Session:   session.DefaultConfig(),
		MoveSpeed: 5,
		Bound:     45,
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State  core.GameState
	Events []events.Event
}

// Game drives one session from terminal input.
type Game struct {
	opts Options
	sess *session.Session

	player   core.Vec2
	tickRate int
	tick     uint64
	screenW  int
	screenH  int

	challengeOpen bool
	feedback      *events.FeedbackEvent
	banner        *events.BannerEvent
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// Reset creates a fresh session in the ready phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	deps := g.opts.Deps
	if cfg.Seed != 0 {
		deps.Seed = cfg.Seed
	}
	g.sess = session.New(g.opts.Session, deps)
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.player = g.opts.Session.Spawn
	g.challengeOpen = false
	g.feedback = nil
	g.banner = nil
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) StepResult {
	g.tick++
	dt := time.Second / time.Duration(g.tickRate)
	st := g.sess.State()

	switch {
	case st.Phase == core.PhaseReady && (input.Has(core.ActionStart) || input.Has(core.ActionSubmit)):
		g.start()
	case st.Phase == core.PhaseWon && input.Has(core.ActionRestart):
		g.start()
	case st.Phase == core.PhasePlaying && input.Has(core.ActionPause):
		g.sess.TogglePause()
	}

	if g.sess.State().Playing() {
		dir := input.Direction()
		g.player = g.player.Add(dir.Scale(g.opts.MoveSpeed * dt.Seconds())).ClampBox(g.opts.Bound)

		if input.Has(core.ActionHint) {
			g.sess.RequestHint()
		}
		if input.Has(core.ActionSubmit) {
			g.sess.Submit(input.Answer)
		}
	}

	evts := g.sess.Step(session.Frame{Player: g.player, Delta: dt})
	g.apply(evts)
	return StepResult{State: g.sess.State(), Events: evts}
}

func (g *Game) start() {
	g.sess.Start()
	g.player = g.opts.Session.Spawn
	g.challengeOpen = false
	g.feedback = nil
	g.banner = nil
}

// apply updates presentation state from session events.
func (g *Game) apply(evts []events.Event) {
	for _, e := range evts {
		switch ev := e.(type) {
		case events.PlayerResetEvent:
			g.player = ev.Position
		case events.ChallengeStartedEvent:
			g.challengeOpen = true
			g.feedback = nil
		case events.ChallengeClosedEvent:
			g.challengeOpen = false
			g.feedback = nil
		case events.FeedbackEvent:
			fb := ev
			g.feedback = &fb
		case events.BannerEvent:
			b := ev
			g.banner = &b
		case events.BannerHiddenEvent:
			if g.banner != nil && g.banner.Kind == ev.Kind {
				g.banner = nil
			}
		}
	}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return g.sess.State()
}

// Player returns the player position.
func (g *Game) Player() core.Vec2 {
	return g.player
}

// ChallengeOpen reports whether the answer box should be shown.
func (g *Game) ChallengeOpen() bool {
	return g.challengeOpen
}

// AcceptsAnswer reports whether a submitted answer would be checked.
func (g *Game) AcceptsAnswer() bool {
	if !g.challengeOpen || !g.sess.State().Playing() {
		return false
	}
	a := g.sess.Snapshot().Active
	return a != nil && a.State == challenge.StateActive.String()
}

// Feedback returns the current feedback message, if any.
func (g *Game) Feedback() (events.FeedbackEvent, bool) {
	if g.feedback == nil {
		return events.FeedbackEvent{}, false
	}
	return *g.feedback, true
}

// Banner returns the banner currently shown, if any.
func (g *Game) Banner() (events.BannerEvent, bool) {
	if g.banner == nil {
		return events.BannerEvent{}, false
	}
	return *g.banner, true
}

// Snapshot returns the session snapshot.
func (g *Game) Snapshot() session.Snapshot {
	return g.sess.Snapshot()
}

// Result returns the session summary.
func (g *Game) Result() session.Result {
	return g.sess.Result()
}
