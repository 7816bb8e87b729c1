package timing

import (
	"sort"
	"time"
)

// Handle identifies a scheduled action. A handle that has not fired yet can
// be cancelled; cancelling a fired or cancelled handle does nothing.
type Handle struct {
	due       time.Duration
	seq       uint64
	fn        func()
	done      bool
	cancelled bool
}

// Cancel prevents the action from running.
func (h *Handle) Cancel() {
	if h == nil || h.done {
		return
	}
	h.cancelled = true
}

// Pending reports whether the action is still waiting to fire.
func (h *Handle) Pending() bool {
	return h != nil && !h.done && !h.cancelled
}

// Scheduler runs fire-once actions after a delay measured in the time it is
// advanced by. It never spawns goroutines; actions run inside Advance.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	pending []*Handle
}

// ScheduleOnce registers fn to run once delay has passed.
func (s *Scheduler) ScheduleOnce(delay time.Duration, fn func()) *Handle {
	s.seq++
	h := &Handle{due: s.now + max(delay, 0), seq: s.seq, fn: fn}
	s.pending = append(s.pending, h)
	return h
}

// Advance moves the scheduler forward and runs every action that became due,
// earliest first. Actions scheduled from inside a callback that are already
// due run in the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
	for {
		h := s.popDue()
		if h == nil {
			return
		}
		h.done = true
		h.fn()
	}
}

func (s *Scheduler) popDue() *Handle {
	s.compact()
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		a, b := s.pending[i], s.pending[j]
		if a.due != b.due {
			return a.due < b.due
		}
		return a.seq < b.seq
	})
	h := s.pending[0]
	if h.due > s.now {
		return nil
	}
	s.pending = s.pending[1:]
	return h
}

func (s *Scheduler) compact() {
	live := s.pending[:0]
	for _, h := range s.pending {
		if !h.cancelled {
			live = append(live, h)
		}
	}
	clear(s.pending[len(live):])
	s.pending = live
}

// Len returns the number of actions still waiting.
func (s *Scheduler) Len() int {
	s.compact()
	return len(s.pending)
}

// CancelAll cancels every pending action, as on session teardown.
func (s *Scheduler) CancelAll() {
	for _, h := range s.pending {
		h.Cancel()
	}
	s.pending = nil
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}
