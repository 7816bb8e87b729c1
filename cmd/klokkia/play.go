package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/klokkia/internal/platform/tui"
	"github.com/vovakirdan/klokkia/internal/session"
	"github.com/vovakirdan/klokkia/internal/speech"
)

var flagPlayerName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a klokkia session in the terminal.

Controls:
  Arrows/WASD  - Walk (WASD only while no clock is open)
  Enter        - Start / submit your answer
  Tab          - Hint: hear the phrase (the clock is then worth 1 point)
  Esc          - Pause
  R            - Play again (after winning)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Predators arrive half as often and move slower
  normal  - The standard schedule
  hard    - Predators arrive twice as often and move faster
  calm    - No predators

Examples:
  klokkia play
  klokkia play --difficulty easy
  klokkia play --config ./my-klokkia.yaml --log-file klokkia.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayerName, "name", "", "Name recorded on the leaderboard (default $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "klokkia")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	speaker := newSpeaker(cfg.Speech, logger)
	if e, ok := speaker.(*speech.Espeak); ok {
		defer e.Close()
	}

	name := flagPlayerName
	if name == "" {
		name = playerName()
	}

	err = tui.Run(tui.Options{
		Game: cfg.GameOptions(session.Deps{
			Speaker: speaker,
			Seed:    flagSeed,
			Logger:  logger.WithPrefix("session"),
		}),
		Runtime:    cfg.Runtime(width, height, flagSeed),
		Store:      store,
		Player:     name,
		Mode:       "terminal",
		Difficulty: flagDifficulty,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
