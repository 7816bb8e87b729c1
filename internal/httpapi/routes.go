package httpapi

import (
	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

func addRoutes(r chi.Router, opts Options, logger *log.Logger) {
	rng := newLockedRand(opts.Seed)

	r.Get("/healthz", handleHealth(logger, opts.Store))

	r.Route("/api", func(r chi.Router) {
		r.Get("/phrase", handlePhrase())
		r.Get("/random", handleRandom(rng))
		r.Post("/check", handleCheck())
		r.Get("/scores", handleScores(logger, opts.Store))
	})

	r.Get("/ws/play", handlePlay(opts, logger, rng))
}
