package httpapi

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/klokkia/internal/storage"
)

const maxScoresLimit = 100

// ScoresResponse is the leaderboard with its aggregate statistics.
type ScoresResponse struct {
	Scores []storage.SessionRecord `json:"scores"`
	Stats  *storage.Stats          `json:"stats"`
}

func handleScores(logger *log.Logger, store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			writeError(w, http.StatusServiceUnavailable, "scores are disabled")
			return
		}

		limit := 10
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = min(n, maxScoresLimit)
		}

		var (
			records []storage.SessionRecord
			err     error
		)
		if player := r.URL.Query().Get("player"); player != "" {
			records, err = store.PlayerSessions(player, limit)
		} else {
			records, err = store.TopSessions(limit)
		}
		if err != nil {
			logger.Error("loading scores", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		stats, err := store.Stats()
		if err != nil {
			logger.Error("loading stats", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if records == nil {
			records = []storage.SessionRecord{}
		}
		writeJSON(w, http.StatusOK, ScoresResponse{Scores: records, Stats: stats})
	}
}
