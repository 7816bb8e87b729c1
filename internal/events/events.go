// Package events defines the outbound notifications a play session emits for
// its presentation adapters. Core components append to a Queue during a tick;
// the adapter drains it afterwards.
package events

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/dutch"
)

// Event is a notification from the session to its presentation adapter.
type Event interface {
	// Type is the stable wire name of the event.
	Type() string
	event()
}

// Category tags a feedback message.
type Category string

const (
	CategoryCorrect    Category = "correct"
	CategoryIncorrect  Category = "incorrect"
	CategoryHintReveal Category = "hint-reveal"
)

// LegendStatus is the state of one predator type in the legend.
type LegendStatus string

const (
	LegendIdle    LegendStatus = "idle"
	LegendActive  LegendStatus = "active"
	LegendCrossed LegendStatus = "crossed"
)

// BannerKind identifies a timed banner.
type BannerKind string

const (
	BannerIncoming BannerKind = "incoming"
	BannerCaught   BannerKind = "caught"
)

// RemovalReason explains why a predator left the arena.
type RemovalReason string

const (
	RemovedExpired RemovalReason = "expired"
	RemovedCaught  RemovalReason = "caught"
)

// FeedbackEvent carries the message shown below the answer box.
type FeedbackEvent struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

func (FeedbackEvent) Type() string { return "feedback" }
func (FeedbackEvent) event()       {}

// ChallengeStartedEvent is emitted when a clock becomes active and the answer
// box should open.
type ChallengeStartedEvent struct {
	ClockID int `json:"clock_id"`
}

func (ChallengeStartedEvent) Type() string { return "challenge_started" }
func (ChallengeStartedEvent) event()       {}

// ChallengeClosedEvent is emitted when the answer box should close, either
// because the player walked away or because the clock was resolved.
type ChallengeClosedEvent struct {
	ClockID int `json:"clock_id"`
}

func (ChallengeClosedEvent) Type() string { return "challenge_closed" }
func (ChallengeClosedEvent) event()       {}

// ClockReplacedEvent is emitted when a slot receives a fresh time.
type ClockReplacedEvent struct {
	ClockID int             `json:"clock_id"`
	Time    dutch.TimeOfDay `json:"time"`
	Style   string          `json:"style"`
}

func (ClockReplacedEvent) Type() string { return "clock_replaced" }
func (ClockReplacedEvent) event()       {}

// ScoreChangedEvent carries the new score and the applied delta.
type ScoreChangedEvent struct {
	Score int `json:"score"`
	Delta int `json:"delta"`
}

func (ScoreChangedEvent) Type() string { return "score" }
func (ScoreChangedEvent) event()       {}

// WonEvent is emitted once, when the score first reaches the win threshold.
type WonEvent struct {
	Score int `json:"score"`
}

func (WonEvent) Type() string { return "won" }
func (WonEvent) event()       {}

// BannerEvent asks the adapter to show a banner for Duration.
type BannerEvent struct {
	Kind     BannerKind    `json:"kind"`
	Text     string        `json:"text"`
	Duration time.Duration `json:"-"`
}

func (BannerEvent) Type() string { return "banner" }
func (BannerEvent) event()       {}

// MarshalJSON writes the duration in milliseconds for browser clients.
func (e BannerEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind       BannerKind `json:"kind"`
		Text       string     `json:"text"`
		DurationMS int64      `json:"duration_ms"`
	}{e.Kind, e.Text, e.Duration.Milliseconds()})
}

// BannerHiddenEvent is emitted when a banner's display time is over.
type BannerHiddenEvent struct {
	Kind BannerKind `json:"kind"`
}

func (BannerHiddenEvent) Type() string { return "banner_hidden" }
func (BannerHiddenEvent) event()       {}

// LegendEvent reports a status change of one predator type.
type LegendEvent struct {
	Predator string       `json:"predator"`
	Status   LegendStatus `json:"status"`
}

func (LegendEvent) Type() string { return "legend" }
func (LegendEvent) event()       {}

// PredatorSpawnedEvent is emitted when a threat enters the arena.
type PredatorSpawnedEvent struct {
	ID       int       `json:"id"`
	Kind     string    `json:"kind"`
	Position core.Vec2 `json:"position"`
	Speed    float64   `json:"speed"`
}

func (PredatorSpawnedEvent) Type() string { return "predator_spawned" }
func (PredatorSpawnedEvent) event()       {}

// PredatorRemovedEvent is emitted when a threat leaves the arena.
type PredatorRemovedEvent struct {
	ID     int           `json:"id"`
	Kind   string        `json:"kind"`
	Reason RemovalReason `json:"reason"`
}

func (PredatorRemovedEvent) Type() string { return "predator_removed" }
func (PredatorRemovedEvent) event()       {}

// PlayerResetEvent commands the movement collaborator to put the player
// back on the spawn point.
type PlayerResetEvent struct {
	Position core.Vec2 `json:"position"`
}

func (PlayerResetEvent) Type() string { return "player_reset" }
func (PlayerResetEvent) event()       {}

// PhaseEvent reports a lifecycle change of the session.
type PhaseEvent struct {
	Phase  string `json:"phase"`
	Paused bool   `json:"paused"`
}

func (PhaseEvent) Type() string { return "phase" }
func (PhaseEvent) event()       {}

// Queue collects events emitted during a tick.
type Queue struct {
	items []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.items = append(q.items, e)
}

// Drain returns all queued events in emission order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.items)
}
