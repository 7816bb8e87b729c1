package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/klokkia/internal/core"
	"github.com/vovakirdan/klokkia/internal/game"
	"github.com/vovakirdan/klokkia/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Options{
		Game:    game.DefaultOptions(),
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 34, TickRate: 30, Seed: 1},
		Store:   store,
		Player:  "tester",
		Mode:    "terminal",
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return mm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func TestModelStartsOnEnter(t *testing.T) {
	m := newTestModel(t, nil)
	if m.State().Phase != core.PhaseReady {
		t.Fatalf("initial phase = %v, expected ready", m.State().Phase)
	}

	m = tick(t, m)
	if m.State().Phase != core.PhaseReady {
		t.Errorf("phase after idle tick = %v, expected ready", m.State().Phase)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if m.State().Phase != core.PhasePlaying {
		t.Errorf("phase after enter = %v, expected playing", m.State().Phase)
	}
}

func TestModelWalksWhileKeyHeld(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	start := m.game.Player()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 5 {
		m = tick(t, m)
	}

	moved := m.game.Player().X - start.X
	// 5 units/s for five ticks at 30 fps
	expected := 5.0 * 5 / 30
	if moved < expected-1e-6 || moved > expected+1e-6 {
		t.Errorf("player moved %f along X, expected %f", moved, expected)
	}
	if m.game.Player().Z != start.Z {
		t.Errorf("player Z changed from %f to %f", start.Z, m.game.Player().Z)
	}
}

func TestModelPauseToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("session not paused after esc")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if m.State().Paused {
		t.Error("session still paused after second esc")
	}
}

func TestModelQuitRecordsPlayedSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = tick(t, m)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Fatal("model not quitting after ctrl+c")
	}

	records, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("recorded %d sessions, expected 1", len(records))
	}
	if records[0].Player != "tester" || records[0].Mode != "terminal" {
		t.Errorf("record = %+v, expected tester/terminal", records[0])
	}
}

func TestModelQuitBeforeStartRecordsNothing(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, runeKey("q"))

	records, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("recorded %d sessions, expected 0", len(records))
	}
}

func TestModelViewHasFooter(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()
	if view == "" {
		t.Fatal("View() returned empty string")
	}
}
