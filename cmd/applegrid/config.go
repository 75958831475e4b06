package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/applegrid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration applegrid would run with, after the search
order (--config, ~/.applegrid/config.yaml, ./configs/applegrid.yaml,
built-in defaults) and flag overrides are applied.

Examples:
  applegrid config
  applegrid config --config ./my-applegrid.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
