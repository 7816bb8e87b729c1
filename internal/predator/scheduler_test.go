package predator

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/events"
	"github.com/vovakirdan/klokkia/internal/scoring"
	"github.com/vovakirdan/klokkia/internal/timing"
)

type fixture struct {
	s     *Scheduler
	board *scoring.Board
	sched *timing.Scheduler
	queue *events.Queue
}

func newFixture(seed int64) fixture {
	f := fixture{
		board: &scoring.Board{},
		sched: &timing.Scheduler{},
		queue: &events.Queue{},
	}
	f.s = New(DefaultConfig(), Deps{
		Board:     f.board,
		Scheduler: f.sched,
		Queue:     f.queue,
		Rand:      rand.New(rand.NewSource(seed)),
	})
	f.queue.Drain()
	return f
}

// far is a point no threat can reach while tests pass zero deltas.
var far = core.V(0, 0)

func countEvents[T events.Event](evts []events.Event) []T {
	var out []T
	for _, e := range evts {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestSpawnOncePerType(t *testing.T) {
	f := newFixture(1)

	f.s.Update(59*time.Second, 0, far)
	if len(f.s.Threats()) != 0 {
		t.Fatalf("Threats() before threshold = %d, expected 0", len(f.s.Threats()))
	}

	for i := 0; i < 100; i++ {
		f.s.Update(60*time.Second+time.Duration(i)*time.Millisecond, 0, far)
	}

	spawned := countEvents[events.PredatorSpawnedEvent](f.queue.Drain())
	if len(spawned) != 1 || spawned[0].Kind != "lion" {
		t.Fatalf("spawned = %+v, expected exactly one lion", spawned)
	}
	if len(f.s.Threats()) != 1 {
		t.Errorf("Threats() = %d, expected 1", len(f.s.Threats()))
	}
}

func TestDelayedTickSpawnsInOrder(t *testing.T) {
	f := newFixture(2)
	f.s.Update(200*time.Second, 0, far)

	spawned := countEvents[events.PredatorSpawnedEvent](f.queue.Drain())
	expected := []string{"lion", "tiger", "wolf"}
	if len(spawned) != len(expected) {
		t.Fatalf("spawned %d predators, expected %d", len(spawned), len(expected))
	}
	for i, kind := range expected {
		if spawned[i].Kind != kind {
			t.Errorf("spawn #%d = %s, expected %s", i, spawned[i].Kind, kind)
		}
	}

	f.s.Update(201*time.Second, 0, far)
	if n := len(countEvents[events.PredatorSpawnedEvent](f.queue.Drain())); n != 0 {
		t.Errorf("re-evaluation spawned %d predators, expected 0", n)
	}
}

func TestSpawnPlacementAndSpeed(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		f := newFixture(seed)
		f.s.Update(60*time.Second, 0, far)
		th := f.s.Threats()[0]

		onX := math.Abs(th.Position.X) == 50 && th.Position.Z >= -20 && th.Position.Z < 20
		onZ := math.Abs(th.Position.Z) == 50 && th.Position.X >= -20 && th.Position.X < 20
		if !onX && !onZ {
			t.Fatalf("seed %d: spawn position %+v not on an arena side", seed, th.Position)
		}
		if th.Speed < 4 || th.Speed >= 6 {
			t.Fatalf("seed %d: speed %f outside [4, 6)", seed, th.Speed)
		}
	}
}

func TestIncomingBanner(t *testing.T) {
	f := newFixture(3)
	f.s.Update(60*time.Second, 0, far)

	banners := countEvents[events.BannerEvent](f.queue.Drain())
	if len(banners) != 1 {
		t.Fatalf("banners = %+v, expected 1", banners)
	}
	b := banners[0]
	if b.Kind != events.BannerIncoming || b.Text != "Pas op! Leeuw komt eraan!" || b.Duration != 3*time.Second {
		t.Errorf("banner = %+v, unexpected", b)
	}
	if f.s.Banner() != events.BannerIncoming {
		t.Errorf("Banner() = %q, expected incoming", f.s.Banner())
	}

	f.sched.Advance(3 * time.Second)
	if hidden := countEvents[events.BannerHiddenEvent](f.queue.Drain()); len(hidden) != 1 {
		t.Errorf("expected one banner_hidden event, got %d", len(hidden))
	}
	if f.s.Banner() != "" {
		t.Errorf("Banner() = %q after hide, expected empty", f.s.Banner())
	}
}

func TestExpiryAtLifetime(t *testing.T) {
	f := newFixture(4)
	f.board.Award(20)
	f.s.Update(60*time.Second, 0, far)
	f.queue.Drain()

	f.s.Update(60*time.Second+35*time.Second-time.Millisecond, 0, far)
	if len(f.s.Threats()) != 1 {
		t.Fatalf("threat removed before lifetime")
	}

	f.s.Update(95*time.Second, 0, far)
	if len(f.s.Threats()) != 0 {
		t.Fatalf("threat still active at lifetime")
	}
	evts := f.queue.Drain()
	removed := countEvents[events.PredatorRemovedEvent](evts)
	if len(removed) != 1 || removed[0].Reason != events.RemovedExpired {
		t.Errorf("removed = %+v, expected one expiry", removed)
	}
	if f.board.Score() != 20 {
		t.Errorf("Score() = %d, expected 20 after expiry", f.board.Score())
	}
	if f.s.Legend()[0].Status != events.LegendCrossed {
		t.Errorf("legend lion = %s, expected crossed", f.s.Legend()[0].Status)
	}
}

func TestCatchPenalizesAndResets(t *testing.T) {
	f := newFixture(5)
	f.board.Award(3)
	f.s.Update(60*time.Second, 0, far)
	f.queue.Drain()

	th := f.s.Threats()[0]
	player := th.Position.Add(core.V(1, 1))
	got := f.s.Update(61*time.Second, 0, player)

	if got != core.V(0, 15) {
		t.Errorf("Update() player = %+v, expected reset point (0, 15)", got)
	}
	if f.board.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 (floored)", f.board.Score())
	}
	if f.s.Catches() != 1 {
		t.Errorf("Catches() = %d, expected 1", f.s.Catches())
	}
	if len(f.s.Threats()) != 0 {
		t.Errorf("Threats() = %d after catch, expected 0", len(f.s.Threats()))
	}

	evts := f.queue.Drain()
	if resets := countEvents[events.PlayerResetEvent](evts); len(resets) != 1 {
		t.Errorf("expected one player_reset event, got %d", len(resets))
	}
	banners := countEvents[events.BannerEvent](evts)
	if len(banners) != 1 || banners[0].Text != MsgCaught || banners[0].Duration != 2*time.Second {
		t.Errorf("banners = %+v, expected caught banner", banners)
	}
	removed := countEvents[events.PredatorRemovedEvent](evts)
	if len(removed) != 1 || removed[0].Reason != events.RemovedCaught {
		t.Errorf("removed = %+v, expected one catch", removed)
	}
	if f.s.Legend()[0].Status != events.LegendCrossed {
		t.Errorf("legend lion = %s, expected crossed", f.s.Legend()[0].Status)
	}
}

func TestCatchWinsOverExpiry(t *testing.T) {
	f := newFixture(6)
	f.board.Award(10)
	f.s.Update(60*time.Second, 0, far)
	th := f.s.Threats()[0]
	f.queue.Drain()

	f.s.Update(95*time.Second, 0, th.Position)
	removed := countEvents[events.PredatorRemovedEvent](f.queue.Drain())
	if len(removed) != 1 || removed[0].Reason != events.RemovedCaught {
		t.Errorf("removed = %+v, expected catch to take precedence", removed)
	}
	if f.board.Score() != 5 {
		t.Errorf("Score() = %d, expected 5", f.board.Score())
	}
}

func TestThreatMovesTowardsPlayer(t *testing.T) {
	f := newFixture(7)
	f.s.Update(60*time.Second, 0, far)
	before := f.s.Threats()[0]

	f.s.Update(61*time.Second, time.Second, far)
	after := f.s.Threats()[0]

	moved := before.Position.Dist(far) - after.Position.Dist(far)
	if math.Abs(moved-before.Speed) > 1e-9 {
		t.Errorf("threat moved %f units in 1s, expected speed %f", moved, before.Speed)
	}
	if after.Heading == 0 && before.Position.X != 0 {
		t.Error("heading not updated towards player")
	}
}

func TestThreatReachesPlayer(t *testing.T) {
	f := newFixture(8)
	f.board.Award(50)
	f.s.Update(60*time.Second, 0, far)

	now := 60 * time.Second
	tick := 100 * time.Millisecond
	caught := false
	for i := 0; i < 300 && !caught; i++ {
		now += tick
		f.s.Update(now, tick, far)
		caught = f.s.Catches() == 1
	}
	if !caught {
		t.Fatal("stationary player was never caught")
	}
	if f.board.Score() != 45 {
		t.Errorf("Score() = %d, expected 45", f.board.Score())
	}
}

func TestResetReopensLatches(t *testing.T) {
	f := newFixture(9)
	f.s.Update(130*time.Second, 0, far)
	f.s.Reset()

	for _, e := range f.s.Legend() {
		if e.Status != events.LegendIdle {
			t.Errorf("legend %s = %s after Reset, expected idle", e.Kind, e.Status)
		}
	}
	f.queue.Drain()

	f.s.Update(60*time.Second, 0, far)
	if n := len(countEvents[events.PredatorSpawnedEvent](f.queue.Drain())); n != 1 {
		t.Errorf("spawned %d after Reset, expected 1", n)
	}
}

func TestRosterSortedByThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Roster = []RosterEntry{
		{Kind: "b", Name: "B", Threshold: 20 * time.Second},
		{Kind: "a", Name: "A", Threshold: 10 * time.Second},
	}
	q := &events.Queue{}
	s := New(cfg, Deps{Board: &scoring.Board{}, Scheduler: &timing.Scheduler{}, Queue: q, Rand: rand.New(rand.NewSource(1))})
	legend := s.Legend()
	if legend[0].Kind != "a" || legend[1].Kind != "b" {
		t.Errorf("Legend() = %+v, expected ascending threshold order", legend)
	}
}
