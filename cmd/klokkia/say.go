package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/klokkia/internal/dutch"
	"github.com/vovakirdan/klokkia/internal/speech"
)

var (
	flagSayAll   bool
	flagSaySpeak bool
)

var sayCmd = &cobra.Command{
	Use:   "say [HH:MM...]",
	Short: "Print Dutch phrases for clock times",
	Long: `Print how a Dutch speaker says each given clock time.
Times must be on a five-minute step. With --all the full table of
288 times is printed.

Examples:
  klokkia say 15:45            # kwart voor vier
  klokkia say 7:25 --speak     # also speak it
  klokkia say --all`,
	RunE: runSay,
}

func init() {
	sayCmd.Flags().BoolVar(&flagSayAll, "all", false, "Print every time of the day")
	sayCmd.Flags().BoolVar(&flagSaySpeak, "speak", false, "Speak each phrase")
}

func runSay(cmd *cobra.Command, args []string) error {
	if flagSayAll {
		for _, t := range dutch.AllTimes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", t, t.Phrase())
		}
		return nil
	}
	if len(args) == 0 {
		return errors.New("give at least one time (HH:MM) or --all")
	}

	times := make([]dutch.TimeOfDay, len(args))
	for i, arg := range args {
		t, err := dutch.ParseClock(arg)
		if err != nil {
			return err
		}
		times[i] = t
	}

	var engine *speech.Espeak
	if flagSaySpeak {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closeLog, err := newLogger(io.Discard, "klokkia")
		if err != nil {
			return err
		}
		defer closeLog()

		e, ok := speech.New(cfg.Speech.Engine, cfg.Speech.Voice, cfg.Speech.Rate, logger).(*speech.Espeak)
		if !ok {
			return speech.ErrUnavailable
		}
		engine = e
	}

	for _, t := range times {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", t, t.Phrase())
		if engine != nil {
			if err := engine.SpeakSync(t.Phrase()); err != nil {
				return err
			}
		}
	}
	return nil
}
