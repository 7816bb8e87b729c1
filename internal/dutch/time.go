// Package dutch converts clock times into idiomatic Dutch time expressions
// and checks free-text answers against them.
package dutch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned when hours or minutes fall outside the clock
// the game uses (hours 0..23, minutes a multiple of five).
var ErrInvalidTime = errors.New("dutch: invalid time")

// Step is the minute granularity of every generated time.
const Step = 5

// TimeOfDay is an immutable clock reading.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// NewTime validates and returns a TimeOfDay.
func NewTime(hours, minutes int) (TimeOfDay, error) {
	t := TimeOfDay{Hours: hours, Minutes: minutes}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// Validate reports whether the time is on the five-minute grid of a 24h day.
func (t TimeOfDay) Validate() error {
	if t.Hours < 0 || t.Hours > 23 {
		return fmt.Errorf("%w: hours %d out of range", ErrInvalidTime, t.Hours)
	}
	if t.Minutes < 0 || t.Minutes > 55 || t.Minutes%Step != 0 {
		return fmt.Errorf("%w: minutes %d not a multiple of %d", ErrInvalidTime, t.Minutes, Step)
	}
	return nil
}

// String formats the time as HH:MM, the way a digital clock face shows it.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}

// Phrase returns the Dutch expression for the time.
func (t TimeOfDay) Phrase() string {
	return Phrase(t.Hours, t.Minutes)
}

// ParseClock parses "H:MM" or "HH:MM" into a TimeOfDay.
func ParseClock(s string) (TimeOfDay, error) {
	hs, ms, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: hours %q: %v", ErrInvalidTime, hs, err)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: minutes %q: %v", ErrInvalidTime, ms, err)
	}
	return NewTime(h, m)
}

// AllTimes returns every time on the five-minute grid in chronological order.
func AllTimes() []TimeOfDay {
	out := make([]TimeOfDay, 0, 24*60/Step)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += Step {
			out = append(out, TimeOfDay{Hours: h, Minutes: m})
		}
	}
	return out
}

// Intner is the random source RandomTime draws from.
// *math/rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// RandomTime draws hours uniformly from 24 values and minutes uniformly
// from the twelve five-minute slots.
func RandomTime(r Intner) TimeOfDay {
	return TimeOfDay{
		Hours:   r.Intn(24),
		Minutes: r.Intn(60/Step) * Step,
	}
}
