package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/klokkia/internal/platform/tui"
	"github.com/vovakirdan/klokkia/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best finished sessions.

Examples:
  klokkia scores
  klokkia scores --player anna --limit 5
  klokkia scores --tui`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's sessions")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded session")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		player := flagScoresPlayer
		if player == "" {
			player = playerName()
		}
		return tui.RunScoreboard(store, player, width, height)
	}

	var sessions []storage.SessionRecord
	if flagScoresPlayer != "" {
		sessions, err = store.PlayerSessions(flagScoresPlayer, flagScoresLimit)
	} else {
		sessions, err = store.TopSessions(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("Klokkia - High Scores")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'klokkia play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-3s  %-5s  %-6s  %-6s  %s\n",
		"Rank", "Player", "Score", "Won", "Right", "Caught", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-3s  %-5s  %-6s  %-6s  %s\n",
		"----", "------", "-----", "---", "-----", "------", "----", "----")

	for i, s := range sessions {
		won := ""
		if s.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-3s  %-5d  %-6d  %-6s  %s\n",
			i+1, s.Player, s.Score, won, s.Correct, s.Catches,
			formatDuration(s.Duration.Seconds()), s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Sessions: %d  Wins: %d  Average: %.1f\n",
			stats.HighScore, stats.Sessions, stats.Wins, stats.AvgScore)
	}
	return nil
}

func formatDuration(secs float64) string {
	s := int(secs)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
