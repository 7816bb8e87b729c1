package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/klokkia/internal/dutch"
	"github.com/vovakirdan/klokkia/internal/session"
	"github.com/vovakirdan/klokkia/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRouter(t *testing.T, store *storage.Store) http.Handler {
	t.Helper()
	return NewRouter(Options{Session: session.DefaultConfig(), Store: store, Seed: 7})
}

func TestHandlePhrase(t *testing.T) {
	r := testRouter(t, nil)

	tests := []struct {
		query          string
		expectedStatus int
		expectedPhrase string
	}{
		{"15:45", http.StatusOK, "kwart voor vier"},
		{"0:00", http.StatusOK, "middernacht"},
		{"12:30", http.StatusOK, "half een"},
		{"3:07", http.StatusBadRequest, ""},
		{"25:00", http.StatusBadRequest, ""},
		{"bogus", http.StatusBadRequest, ""},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/phrase?time="+tc.query, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, expected %d; body: %s", rec.Code, tc.expectedStatus, rec.Body.String())
			}
			if tc.expectedStatus != http.StatusOK {
				return
			}
			var resp PhraseResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Phrase != tc.expectedPhrase {
				t.Errorf("phrase = %q, expected %q", resp.Phrase, tc.expectedPhrase)
			}
		})
	}
}

func TestHandleRandom(t *testing.T) {
	r := testRouter(t, nil)

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/random", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}
		var resp PhraseResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		tod, err := dutch.ParseClock(resp.Time)
		if err != nil {
			t.Fatalf("random time %q does not parse: %v", resp.Time, err)
		}
		if resp.Phrase != tod.Phrase() {
			t.Errorf("phrase = %q, expected %q", resp.Phrase, tod.Phrase())
		}
	}
}

func TestHandleCheck(t *testing.T) {
	r := testRouter(t, nil)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedOK     bool
	}{
		{"exact", `{"time":"15:45","answer":"kwart voor vier"}`, http.StatusOK, true},
		{"numerals and case", `{"time":"15:45","answer":"  Kwart voor 4 "}`, http.StatusOK, true},
		{"wrong", `{"time":"15:45","answer":"kwart over vier"}`, http.StatusOK, false},
		{"empty answer", `{"time":"15:45","answer":""}`, http.StatusOK, false},
		{"bad time", `{"time":"15:44","answer":"x"}`, http.StatusBadRequest, false},
		{"bad body", `{`, http.StatusBadRequest, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/check", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("status = %d, expected %d; body: %s", rec.Code, tc.expectedStatus, rec.Body.String())
			}
			if tc.expectedStatus != http.StatusOK {
				return
			}
			var resp CheckResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Correct != tc.expectedOK {
				t.Errorf("correct = %v, expected %v", resp.Correct, tc.expectedOK)
			}
			if resp.Expected != "kwart voor vier" {
				t.Errorf("expected phrase = %q, expected %q", resp.Expected, "kwart voor vier")
			}
		})
	}
}

func TestHandleScores(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		r := testRouter(t, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scores", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, expected 503", rec.Code)
		}
	})

	t.Run("top and player", func(t *testing.T) {
		store := openStore(t)
		for _, rec := range []storage.SessionRecord{
			{Player: "anna", Mode: "web", Score: 30, Duration: time.Minute},
			{Player: "bram", Mode: "ssh", Score: 100, Won: true, Duration: 5 * time.Minute},
		} {
			if _, err := store.SaveSession(rec); err != nil {
				t.Fatalf("SaveSession() failed: %v", err)
			}
		}
		r := testRouter(t, store)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scores?limit=5", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", rec.Code)
		}
		var resp ScoresResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Scores) != 2 || resp.Scores[0].Player != "bram" {
			t.Errorf("scores = %+v, expected bram first", resp.Scores)
		}
		if resp.Stats == nil || resp.Stats.Sessions != 2 || resp.Stats.Wins != 1 {
			t.Errorf("stats = %+v, expected 2 sessions and 1 win", resp.Stats)
		}

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scores?player=anna", nil))
		resp = ScoresResponse{}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Scores) != 1 || resp.Scores[0].Score != 30 {
			t.Errorf("player scores = %+v, expected anna's single session", resp.Scores)
		}

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scores?limit=-1", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status for negative limit = %d, expected 400", rec.Code)
		}
	})
}

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name     string
		store    *storage.Store
		expected string
	}{
		{"without store", nil, "disabled"},
		{"with store", openStore(t), "ok"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := testRouter(t, tc.store)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, expected 200", rec.Code)
			}
			var checks map[string]struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&checks); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if checks["sqlite"].Status != tc.expected {
				t.Errorf("sqlite status = %q, expected %q", checks["sqlite"].Status, tc.expected)
			}
		})
	}
}
