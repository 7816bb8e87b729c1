// Package httpapi serves klokkia over HTTP: a small JSON API around the
// Dutch time phrases and the leaderboard, and a websocket endpoint where a
// browser client drives a full play session.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/klokkia/internal/session"
	"github.com/vovakirdan/klokkia/internal/storage"
)

// Options configures the HTTP server.
type Options struct {
	Addr       string
	Session    session.Config
	Bound      float64        // arena half-size for client-reported positions
	Difficulty string         // recorded with finished sessions
	Store      *storage.Store // optional; nil disables the leaderboard
	Logger     *log.Logger    // optional
	Seed       int64          // 0 means seed from the current time
}

// Server is the klokkia HTTP server.
type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// New creates a server with all routes mounted.
func New(opts Options) *Server {
	opts = opts.withDefaults()

	return &Server{
		srv: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: opts.Logger,
	}
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Bound <= 0 {
		o.Bound = 45
	}
	if o.Difficulty == "" {
		o.Difficulty = "normal"
	}
	return o
}

// NewRouter builds the chi router used by the server.
func NewRouter(opts Options) http.Handler {
	opts = opts.withDefaults()
	logger := opts.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(newStructuredLogger(logger))
	r.Use(middleware.Recoverer)

	addRoutes(r, opts, logger)
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run listens and serves until the server is shut down.
func (s *Server) Run(_ context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}

	s.logger.Info("http server listening", "addr", ln.Addr().String())
	err = s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting at most ten seconds for open requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func newStructuredLogger(logger *log.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("http request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// lockedRand is a random source shared between request goroutines.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *lockedRand) Int63() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Int63()
}
