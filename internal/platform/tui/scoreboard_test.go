package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/klokkia/internal/storage"
)

func seedStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.SessionRecord{
		{Player: "anna", Mode: "terminal", Score: 30, Correct: 3, Duration: 90 * time.Second},
		{Player: "bram", Mode: "ssh", Score: 100, Won: true, Correct: 10, Duration: 5 * time.Minute},
		{Player: "anna", Mode: "web", Score: 12, Correct: 2, Catches: 1, Duration: time.Minute},
	} {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardViews(t *testing.T) {
	store := seedStore(t)
	m := NewScoreboardModel(store, "anna", 120, 30)

	if got := len(m.views); got != 3 {
		t.Fatalf("len(views) = %d, expected 3", got)
	}
	if m.currentView() != ViewTop {
		t.Errorf("currentView() = %v, expected ViewTop", m.currentView())
	}
	if len(m.sessions) != 3 || m.sessions[0].Player != "bram" {
		t.Errorf("top sessions = %+v, expected bram first of 3", m.sessions)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.currentView() != ViewRecent {
		t.Errorf("currentView() after tab = %v, expected ViewRecent", m.currentView())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.currentView() != ViewMine {
		t.Fatalf("currentView() after second tab = %v, expected ViewMine", m.currentView())
	}
	if len(m.sessions) != 2 {
		t.Errorf("len(sessions) for anna = %d, expected 2", len(m.sessions))
	}
	for _, s := range m.sessions {
		if s.Player != "anna" {
			t.Errorf("session player = %q, expected anna", s.Player)
		}
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.currentView() != ViewTop {
		t.Errorf("currentView() after wrap = %v, expected ViewTop", m.currentView())
	}
}

func TestScoreboardWithoutPlayer(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if got := len(m.views); got != 2 {
		t.Errorf("len(views) = %d, expected 2", got)
	}
	if m.stats != nil || len(m.sessions) != 0 {
		t.Errorf("expected no data without a store")
	}
	if m.View() == "" {
		t.Error("View() = empty, expected content")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Update(q) returned nil cmd, expected tea.Quit")
	}
	if v := next.(ScoreboardModel).View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestScoreboardViewShowsStats(t *testing.T) {
	m := NewScoreboardModel(seedStore(t), "anna", 120, 30)
	v := m.View()
	if !strings.Contains(v, "bram") {
		t.Errorf("View() does not list bram")
	}
}

func TestFormatBoardDuration(t *testing.T) {
	tests := []struct {
		in       time.Duration
		expected string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{90 * time.Second, "1:30"},
		{12*time.Minute + 5*time.Second, "12:05"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.in); got != tc.expected {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
