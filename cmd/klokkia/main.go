// klokkia is a game for learning to tell the time in Dutch: walk up to a clock,
// type the time the way a Dutch speaker says it, and keep ahead of the
// predators that join the arena as time goes by.
//
// Usage:
//
//	klokkia play             - Play in the terminal
//	klokkia serve            - Start the SSH and HTTP servers
//	klokkia scores           - Show the leaderboard
//	klokkia say [HH:MM...]   - Print Dutch phrases for clock times
//	klokkia config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--db <path>           - Set database path (default: ~/.klokkia/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - easy, normal, hard or calm
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/klokkia/internal/config"
	"github.com/vovakirdan/klokkia/internal/speech"
	"github.com/vovakirdan/klokkia/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "klokkia",
	Short: "Klokkia - learn to tell the time in Dutch",
	Long: `Klokkia is a game for learning to read the clock in Dutch.

Walk up to a clock, type the time as a Dutch speaker would say it
("kwart over drie", "vijf voor half acht") and reach 100 points.
Predators join the arena as the minutes go by.

Available commands:
  play     - Play in the terminal
  serve    - Start the SSH and HTTP servers
  scores   - View the leaderboard
  say      - Print Dutch phrases for clock times
  config   - Print the effective configuration

Examples:
  klokkia play
  klokkia play --difficulty calm
  klokkia serve --ssh :2222 --http :8080
  klokkia say 15:45 7:25`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, calm")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Game.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, cfg.Validate()
}

// newLogger creates the logger for a command. Logs go to --log-file when set
// and to fallback otherwise. The returned function closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the leaderboard. A failure is reported and play continues
// without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}

// newSpeaker creates the pronunciation backend selected by the config.
func newSpeaker(cfg config.SpeechConfig, logger *log.Logger) speech.Speaker {
	if !cfg.Enabled {
		return speech.Silent{}
	}
	sp := speech.New(cfg.Engine, cfg.Voice, cfg.Rate, logger.WithPrefix("speech"))
	if _, ok := sp.(speech.Silent); ok {
		logger.Info("no speech engine found; hints will not be spoken")
	}
	return sp
}

// playerName returns the name recorded with terminal sessions.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
