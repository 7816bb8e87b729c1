package httpapi

import (
	"net/http"
	"strings"

	"github.com/vovakirdan/klokkia/internal/dutch"
)

// PhraseResponse pairs a clock time with its Dutch phrase.
type PhraseResponse struct {
	Time   string `json:"time"`
	Phrase string `json:"phrase"`
}

// CheckRequest is an answer to a given clock time.
type CheckRequest struct {
	Time   string `json:"time"`
	Answer string `json:"answer"`
}

// CheckResponse tells whether an answer matches the expected phrase.
type CheckResponse struct {
	Correct  bool   `json:"correct"`
	Expected string `json:"expected"`
}

func handlePhrase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := dutch.ParseClock(r.URL.Query().Get("time"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "time must be H:MM on a five-minute step")
			return
		}
		writeJSON(w, http.StatusOK, PhraseResponse{Time: t.String(), Phrase: t.Phrase()})
	}
}

func handleRandom(rng dutch.Intner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := dutch.RandomTime(rng)
		writeJSON(w, http.StatusOK, PhraseResponse{Time: t.String(), Phrase: t.Phrase()})
	}
}

func handleCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		t, err := dutch.ParseClock(strings.TrimSpace(req.Time))
		if err != nil {
			writeError(w, http.StatusBadRequest, "time must be H:MM on a five-minute step")
			return
		}

		expected := t.Phrase()
		writeJSON(w, http.StatusOK, CheckResponse{
			Correct:  dutch.IsEquivalent(req.Answer, expected),
			Expected: expected,
		})
	}
}
