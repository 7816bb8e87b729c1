package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/klokkia/internal/httpapi"
	"github.com/vovakirdan/klokkia/internal/platform/tui"
	"github.com/vovakirdan/klokkia/internal/session"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagNoSSH       bool
	flagNoHTTP      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH and HTTP servers",
	Long: `Start the klokkia servers.

The SSH server gives every connection its own terminal session.
The HTTP server offers a JSON API and a websocket endpoint (/ws/play)
where a browser drives a session. All sessions share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses the configured path, generating the key if missing

Examples:
  klokkia serve                          # SSH on :2222, HTTP on :8080
  klokkia serve --ssh :23234 --no-http   # SSH only
  klokkia serve --http 127.0.0.1:9000    # Different HTTP address

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoSSH, "no-ssh", false, "Do not start the SSH server")
	serveCmd.Flags().BoolVar(&flagNoHTTP, "no-http", false, "Do not start the HTTP server")
}

type server interface {
	Run(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagNoSSH && flagNoHTTP {
		return errors.New("nothing to serve: both --no-ssh and --no-http given")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if flagHTTPAddr != "" {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}

	logger, closeLog, err := newLogger(os.Stderr, "klokkia")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	var servers []server

	if !flagNoSSH {
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = cfg.Server.SSHAddr
		sshCfg.HostKeyPath = cfg.Server.HostKeyPath
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		sshCfg.Game = cfg.GameOptions(session.Deps{Seed: flagSeed})
		sshCfg.TickRate = cfg.Game.TickRate
		sshCfg.Difficulty = flagDifficulty

		sshSrv, err := tui.NewSSHServer(sshCfg, store, logger.WithPrefix("ssh"))
		if err != nil {
			return fmt.Errorf("creating SSH server: %w", err)
		}
		servers = append(servers, sshSrv)
	}

	if !flagNoHTTP {
		servers = append(servers, httpapi.New(httpapi.Options{
			Addr:       cfg.Server.HTTPAddr,
			Session:    cfg.Session(),
			Bound:      cfg.Game.Bound,
			Difficulty: flagDifficulty,
			Store:      store,
			Logger:     logger.WithPrefix("http"),
			Seed:       flagSeed,
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(context.Background()); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
