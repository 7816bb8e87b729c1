package timing

import (
	"testing"
	"time"
)

func TestSessionClockPauseExcludesTime(t *testing.T) {
	var c SessionClock
	c.Advance(30 * time.Second)
	c.Pause()
	c.Advance(10 * time.Minute)
	if !c.Paused() {
		t.Error("Paused() = false, expected true")
	}
	c.Resume()
	c.Advance(15 * time.Second)

	if c.Elapsed() != 45*time.Second {
		t.Errorf("Elapsed() = %v, expected 45s", c.Elapsed())
	}
	if c.Seconds() != 45 {
		t.Errorf("Seconds() = %v, expected 45", c.Seconds())
	}
}

func TestSessionClockIgnoresNegative(t *testing.T) {
	var c SessionClock
	c.Advance(time.Second)
	if got := c.Advance(-time.Second); got != 0 {
		t.Errorf("Advance(-1s) = %v, expected 0", got)
	}
	if c.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, expected 1s", c.Elapsed())
	}
	c.Pause()
	c.Reset()
	if c.Elapsed() != 0 || c.Paused() {
		t.Errorf("Reset() left elapsed=%v paused=%v", c.Elapsed(), c.Paused())
	}
}

func TestSchedulerFiresOnceWhenDue(t *testing.T) {
	var s Scheduler
	fired := 0
	h := s.ScheduleOnce(2*time.Second, func() { fired++ })

	s.Advance(1999 * time.Millisecond)
	if fired != 0 || !h.Pending() {
		t.Fatalf("fired = %d before due, expected 0", fired)
	}
	s.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d at due time, expected 1", fired)
	}
	s.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("fired = %d after due, expected exactly 1", fired)
	}
	if h.Pending() {
		t.Error("Pending() = true after firing")
	}
}

func TestSchedulerOrder(t *testing.T) {
	var s Scheduler
	var order []string
	s.ScheduleOnce(3*time.Second, func() { order = append(order, "c") })
	s.ScheduleOnce(time.Second, func() { order = append(order, "a") })
	s.ScheduleOnce(time.Second, func() { order = append(order, "b") })

	s.Advance(5 * time.Second)

	expected := []string{"a", "b", "c"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order = %v, expected %v", order, expected)
			break
		}
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s Scheduler
	fired := false
	h := s.ScheduleOnce(time.Second, func() { fired = true })
	h.Cancel()
	s.Advance(2 * time.Second)
	if fired {
		t.Error("cancelled action fired")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}

	var nilHandle *Handle
	nilHandle.Cancel()
}

func TestSchedulerCancelAll(t *testing.T) {
	var s Scheduler
	count := 0
	for i := 1; i <= 3; i++ {
		s.ScheduleOnce(time.Duration(i)*time.Second, func() { count++ })
	}
	s.Advance(time.Second)
	s.CancelAll()
	s.Advance(time.Minute)
	if count != 1 {
		t.Errorf("count = %d, expected 1", count)
	}
}

func TestSchedulerNestedScheduling(t *testing.T) {
	var s Scheduler
	var got []string
	s.ScheduleOnce(time.Second, func() {
		got = append(got, "outer")
		s.ScheduleOnce(0, func() { got = append(got, "inner") })
		s.ScheduleOnce(time.Second, func() { got = append(got, "later") })
	})

	s.Advance(time.Second)
	if len(got) != 2 || got[1] != "inner" {
		t.Fatalf("got = %v, expected [outer inner]", got)
	}
	s.Advance(time.Second)
	if len(got) != 3 || got[2] != "later" {
		t.Errorf("got = %v, expected later to fire", got)
	}
}
