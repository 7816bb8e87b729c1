// Package predator spawns timed threats, moves them towards the player and
// resolves catches and expiry.
package predator

import (
	"cmp"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/scoring"
	"github.com/vovakirdan/klokkia/internal/timing"
)

// MsgCaught is the banner shown when a predator reaches the player.
const MsgCaught = "Gepakt! -5 punten!"

const msgIncoming = "Pas op! %s komt eraan!"

// Config holds the scheduling parameters shared by all predator types.
type Config struct {
	Roster         []RosterEntry
	SpeedMin       float64 // units per second
	SpeedMax       float64
	Lifetime       time.Duration
	CatchRadius    float64
	SpawnDistance  float64 // fixed coordinate of the spawn side
	SpawnSpread    float64 // half-width of the offset along the side
	Penalty        uint
	IncomingBanner time.Duration
	CaughtBanner   time.Duration
	ResetPoint     core.Vec2
}

// DefaultConfig returns the standard arena rules.
func DefaultConfig() Config {
	return Config{
		Roster:         DefaultRoster,
		SpeedMin:       4,
		SpeedMax:       6,
		Lifetime:       35 * time.Second,
		CatchRadius:    3,
		SpawnDistance:  50,
		SpawnSpread:    20,
		Penalty:        scoring.PenaltyCaught,
		IncomingBanner: 3 * time.Second,
		CaughtBanner:   2 * time.Second,
		ResetPoint:     core.V(0, 15),
	}
}

// Deps are the collaborators shared with the rest of the session.
type Deps struct {
	Board     *scoring.Board
	Scheduler *timing.Scheduler
	Queue     *events.Queue
	Rand      *rand.Rand
	Logger    *log.Logger // optional
}

// Threat is a predator currently in the arena.
type Threat struct {
	ID        int           `json:"id"`
	Kind      string        `json:"kind"`
	Name      string        `json:"name"`
	Position  core.Vec2     `json:"position"`
	Heading   float64       `json:"heading"`
	Speed     float64       `json:"speed"`
	SpawnedAt time.Duration `json:"-"`
}

// LegendEntry is one line of the predator legend.
type LegendEntry struct {
	Kind   string              `json:"kind"`
	Name   string              `json:"name"`
	Status events.LegendStatus `json:"status"`
}

// Scheduler owns the spawn latches and the active threats of a session.
type Scheduler struct {
	cfg    Config
	deps   Deps
	logger *log.Logger

	spawned []bool
	legend  []events.LegendStatus
	threats []*Threat
	nextID  int
	catches int

	banner     events.BannerKind
	bannerHide *timing.Handle
}

// New creates a scheduler with every latch open.
func New(cfg Config, deps Deps) *Scheduler {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	roster := slices.Clone(cfg.Roster)
	slices.SortStableFunc(roster, func(a, b RosterEntry) int {
		return cmp.Compare(a.Threshold, b.Threshold)
	})
	cfg.Roster = roster

	s := &Scheduler{cfg: cfg, deps: deps, logger: logger}
	s.Reset()
	return s
}

// Reset clears threats and latches and sets every legend entry to idle.
func (s *Scheduler) Reset() {
	s.spawned = make([]bool, len(s.cfg.Roster))
	s.legend = make([]events.LegendStatus, len(s.cfg.Roster))
	for i, entry := range s.cfg.Roster {
		s.legend[i] = events.LegendIdle
		s.deps.Queue.Push(events.LegendEvent{Predator: entry.Kind, Status: events.LegendIdle})
	}
	s.threats = nil
	s.nextID = 0
	s.catches = 0
	s.bannerHide.Cancel()
	s.bannerHide = nil
	s.banner = ""
}

// Update runs one tick at game time now. dt is the game time advanced since
// the previous tick. It returns the player position after the tick, which is
// the reset point if the player was caught.
func (s *Scheduler) Update(now, dt time.Duration, player core.Vec2) core.Vec2 {
	for i, entry := range s.cfg.Roster {
		if s.spawned[i] || now < entry.Threshold {
			continue
		}
		s.spawned[i] = true
		s.spawn(i, now)
	}

	live := s.threats[:0]
	for _, th := range s.threats {
		if now-th.SpawnedAt >= s.cfg.Lifetime {
			if th.Position.Dist(player) < s.cfg.CatchRadius {
				player = s.catch(th)
				continue
			}
			s.remove(th, events.RemovedExpired)
			continue
		}

		s.move(th, player, dt)
		if th.Position.Dist(player) < s.cfg.CatchRadius {
			player = s.catch(th)
			continue
		}
		live = append(live, th)
	}
	clear(s.threats[len(live):])
	s.threats = live

	return player
}

func (s *Scheduler) spawn(idx int, now time.Duration) {
	entry := s.cfg.Roster[idx]
	s.nextID++
	th := &Threat{
		ID:        s.nextID,
		Kind:      entry.Kind,
		Name:      entry.Name,
		Position:  s.spawnPoint(),
		Speed:     s.cfg.SpeedMin + s.deps.Rand.Float64()*(s.cfg.SpeedMax-s.cfg.SpeedMin),
		SpawnedAt: now,
	}
	s.threats = append(s.threats, th)
	s.legend[idx] = events.LegendActive

	s.showBanner(events.BannerIncoming, fmt.Sprintf(msgIncoming, entry.Name), s.cfg.IncomingBanner)
	s.deps.Queue.Push(events.PredatorSpawnedEvent{ID: th.ID, Kind: th.Kind, Position: th.Position, Speed: th.Speed})
	s.deps.Queue.Push(events.LegendEvent{Predator: entry.Kind, Status: events.LegendActive})
	s.logger.Info("predator spawned", "kind", entry.Kind, "at", now, "pos", th.Position, "speed", th.Speed)
}

// spawnPoint picks one of the four sides outside the playable area and a
// uniform offset along it.
func (s *Scheduler) spawnPoint() core.Vec2 {
	side := s.deps.Rand.Intn(4)
	offset := s.deps.Rand.Float64()*2*s.cfg.SpawnSpread - s.cfg.SpawnSpread
	d := s.cfg.SpawnDistance
	switch side {
	case 0:
		return core.V(-d, offset)
	case 1:
		return core.V(d, offset)
	case 2:
		return core.V(offset, -d)
	default:
		return core.V(offset, d)
	}
}

func (s *Scheduler) move(th *Threat, player core.Vec2, dt time.Duration) {
	to := player.Sub(th.Position)
	dist := to.Len()
	if dist == 0 || dt <= 0 {
		return
	}
	step := min(th.Speed*dt.Seconds(), dist)
	th.Position = th.Position.Add(to.Normalize().Scale(step))
	th.Heading = to.Heading()
}

func (s *Scheduler) catch(th *Threat) core.Vec2 {
	before := s.deps.Board.Score()
	s.deps.Board.Penalize(s.cfg.Penalty)
	s.catches++

	s.deps.Queue.Push(events.ScoreChangedEvent{Score: s.deps.Board.Score(), Delta: s.deps.Board.Score() - before})
	s.showBanner(events.BannerCaught, MsgCaught, s.cfg.CaughtBanner)
	s.deps.Queue.Push(events.PlayerResetEvent{Position: s.cfg.ResetPoint})
	s.remove(th, events.RemovedCaught)
	s.logger.Info("player caught", "kind", th.Kind, "score", s.deps.Board.Score())
	return s.cfg.ResetPoint
}

func (s *Scheduler) remove(th *Threat, reason events.RemovalReason) {
	for i, entry := range s.cfg.Roster {
		if entry.Kind == th.Kind {
			s.legend[i] = events.LegendCrossed
		}
	}
	s.deps.Queue.Push(events.PredatorRemovedEvent{ID: th.ID, Kind: th.Kind, Reason: reason})
	s.deps.Queue.Push(events.LegendEvent{Predator: th.Kind, Status: events.LegendCrossed})
	if reason == events.RemovedExpired {
		s.logger.Debug("predator expired", "kind", th.Kind)
	}
}

// showBanner displays a banner and schedules its hide. The arena has a single
// banner slot, so a newer banner replaces an older one.
func (s *Scheduler) showBanner(kind events.BannerKind, text string, d time.Duration) {
	s.bannerHide.Cancel()
	s.banner = kind
	s.deps.Queue.Push(events.BannerEvent{Kind: kind, Text: text, Duration: d})
	s.bannerHide = s.deps.Scheduler.ScheduleOnce(d, func() {
		s.banner = ""
		s.bannerHide = nil
		s.deps.Queue.Push(events.BannerHiddenEvent{Kind: kind})
	})
}

// Threats returns a snapshot of the active threats.
func (s *Scheduler) Threats() []Threat {
	out := make([]Threat, len(s.threats))
	for i, th := range s.threats {
		out[i] = *th
	}
	return out
}

// Legend returns the status of every predator type in roster order.
func (s *Scheduler) Legend() []LegendEntry {
	out := make([]LegendEntry, len(s.cfg.Roster))
	for i, entry := range s.cfg.Roster {
		out[i] = LegendEntry{Kind: entry.Kind, Name: entry.Name, Status: s.legend[i]}
	}
	return out
}

// Catches returns how often the player was caught this session.
func (s *Scheduler) Catches() int {
	return s.catches
}

// Banner returns the kind of the banner currently shown, or "".
func (s *Scheduler) Banner() events.BannerKind {
	return s.banner
}
