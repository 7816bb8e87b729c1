package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/klokkia/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration klokkia would run with, after the config
file, KLOKKIA_* environment variables and command-line flags are applied.

Examples:
  klokkia config > ~/.klokkia/klokkia.yaml
  klokkia config --defaults
  KLOKKIA_WIN_SCORE=50 klokkia config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
