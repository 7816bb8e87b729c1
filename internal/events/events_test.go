package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestQueueDrain(t *testing.T) {
	var q Queue
	q.Push(ScoreChangedEvent{Score: 10, Delta: 10})
	q.Push(WonEvent{Score: 100})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain() returned %d events, expected 2", len(got))
	}
	if got[0].Type() != "score" || got[1].Type() != "won" {
		t.Errorf("Drain() order = %s, %s; expected score, won", got[0].Type(), got[1].Type())
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, expected 0", q.Len())
	}
	if q.Drain() != nil {
		t.Error("Drain() on empty queue should return nil")
	}
}

func TestBannerJSON(t *testing.T) {
	b := BannerEvent{Kind: BannerCaught, Text: "Gepakt! -5 punten!", Duration: 2 * time.Second}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded["duration_ms"] != float64(2000) {
		t.Errorf("duration_ms = %v, expected 2000", decoded["duration_ms"])
	}
	if decoded["kind"] != "caught" {
		t.Errorf("kind = %v, expected caught", decoded["kind"])
	}
}
