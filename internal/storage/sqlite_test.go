package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/klokkia/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveSession(SessionRecord{Player: "anna", Mode: "terminal", Score: 42}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("HighScore() = %d, expected 42", high)
	}
}

func TestSaveAndTopSessions(t *testing.T) {
	store := openTestStore(t)

	records := []SessionRecord{
		{Player: "anna", Mode: "terminal", Score: 100, Won: true, Correct: 10, Duration: 8 * time.Minute},
		{Player: "bram", Mode: "ssh", Score: 55, Correct: 6, Catches: 1, Duration: 4 * time.Minute},
		{Player: "cees", Mode: "web", Score: 100, Won: true, Correct: 11, Hints: 1, Duration: 6 * time.Minute},
	}
	for _, r := range records {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopSessions() returned %d records, expected 3", len(top))
	}

	expected := []string{"cees", "anna", "bram"}
	for i, name := range expected {
		if top[i].Player != name {
			t.Errorf("TopSessions()[%d].Player = %q, expected %q", i, top[i].Player, name)
		}
	}
	if !top[0].Won || top[0].Hints != 1 || top[0].Duration != 6*time.Minute {
		t.Errorf("TopSessions()[0] = %+v, fields not round-tripped", top[0])
	}
	if top[0].Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected default normal", top[0].Difficulty)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	limited, err := store.TopSessions(1)
	if err != nil {
		t.Fatalf("TopSessions(1) failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("TopSessions(1) returned %d records", len(limited))
	}
}

func TestRecentAndPlayerSessions(t *testing.T) {
	store := openTestStore(t)
	for i, p := range []string{"anna", "bram", "anna"} {
		if _, err := store.SaveSession(SessionRecord{Player: p, Mode: "terminal", Score: i}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 2 || recent[1].Score != 1 {
		t.Errorf("RecentSessions() = %+v, expected newest first", recent)
	}

	annas, err := store.PlayerSessions("anna", 10)
	if err != nil {
		t.Fatalf("PlayerSessions() failed: %v", err)
	}
	if len(annas) != 2 {
		t.Errorf("PlayerSessions(anna) returned %d records, expected 2", len(annas))
	}
}

func TestStatsAndClear(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Sessions != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", stats)
	}

	res := session.Result{Score: 100, Won: true, Correct: 10, Catches: 2, Duration: time.Minute}
	if _, err := store.SaveSession(RecordFromResult("anna", "terminal", "hard", res)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(SessionRecord{Player: "bram", Mode: "web", Score: 20, Correct: 2}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.Wins != 1 || stats.HighScore != 100 {
		t.Errorf("Stats() = %+v, expected 2 sessions, 1 win, high 100", stats)
	}
	if stats.AvgScore != 60 {
		t.Errorf("AvgScore = %f, expected 60", stats.AvgScore)
	}
	if stats.TotalCorrect != 12 || stats.TotalCatches != 2 {
		t.Errorf("totals = %d correct / %d catches, expected 12 / 2", stats.TotalCorrect, stats.TotalCatches)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if high, _ := store.HighScore(); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
}
