package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/klokkia/internal/storage"
)

func handleHealth(logger *log.Logger, store *storage.Store) http.HandlerFunc {
	type result struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]result{"sqlite": {Status: "disabled"}}
		status := http.StatusOK

		if store != nil {
			checks["sqlite"] = result{Status: "ok"}
			if err := store.Ping(ctx); err != nil {
				logger.Error("health check failed", "name", "sqlite", "err", err)
				checks["sqlite"] = result{Status: "error"}
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, checks)
	}
}
