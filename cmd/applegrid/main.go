// applegrid is a small turn-based terminal game: walk the grid and eat all
// the apples.
//
// Usage:
//
//	applegrid list             - List available games
//	applegrid play [game]      - Play a game (line mode, or --tui)
//	applegrid serve            - Start SSH server for remote play
//	applegrid config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Path to a config YAML
//	--log-level <lvl>   - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/applegrid/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/applegrid/internal/games/apples"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "applegrid",
	Short: "Apple Grid - eat all the apples in your terminal",
	Long: `Apple Grid is a turn-based grid game. Walk the @ around the walled
board with w/a/s/d and eat every apple (*). Eat them all and a fresh
board is dealt.

Available commands:
  list     - Show all available games
  play     - Play a game
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  applegrid play
  applegrid play --tui
  applegrid serve --ssh :2222
  applegrid config > ~/.applegrid/config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the --log-level override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel != "" {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return config.Config{}, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger creates a stderr logger at the configured level.
func newLogger(prefix string, cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// fatal logs err and exits with status 1.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
