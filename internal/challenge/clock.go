package challenge

import (
	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/dutch"
)

// Style is how a clock face is drawn.
type Style string

const (
	StyleClassic Style = "classic"
	StyleDigital Style = "digital"
)

// Clock is one clock slot in the arena. Slots keep their ID and position for
// the whole session; a resolved clock is replaced by a new value with a fresh
// time, phrase and style.
type Clock struct {
	ID       int             `json:"id"`
	Position core.Vec2       `json:"position"`
	Time     dutch.TimeOfDay `json:"time"`
	Phrase   string          `json:"-"`
	Style    Style           `json:"style"`
}

// NewClock builds a clock, deriving the phrase from the time.
func NewClock(id int, pos core.Vec2, t dutch.TimeOfDay, style Style) Clock {
	return Clock{ID: id, Position: pos, Time: t, Phrase: t.Phrase(), Style: style}
}

// DefaultSlots are the eight clock positions around the arena centre.
var DefaultSlots = []core.Vec2{
	{X: -20, Z: -20},
	{X: 20, Z: -20},
	{X: -20, Z: 20},
	{X: 20, Z: 20},
	{X: 0, Z: -25},
	{X: 0, Z: 25},
	{X: -25, Z: 0},
	{X: 25, Z: 0},
}
