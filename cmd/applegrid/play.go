package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/applegrid/internal/platform/console"
	"github.com/vovakirdan/applegrid/internal/platform/theme"
	"github.com/vovakirdan/applegrid/internal/platform/tui"
	"github.com/vovakirdan/applegrid/internal/registry"
)

const defaultGameID = "apples"

var flagTUI bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: apples).

Line mode (default): type a command and press Enter.
  w / s / a / d   - Move up / down / left / right
  anything else   - Ignored (or warned about, with input.invalid: warn)
  Ctrl+C          - Quit

TUI mode (--tui): single key presses, arrows work too.
  ?               - Toggle help
  q / Esc         - Quit

Examples:
  applegrid play
  applegrid play apples --tui
  applegrid play --config ./my-applegrid.yaml --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagTUI, "tui", false, "Use the full-screen interface")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'applegrid list' to see available games.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger("applegrid", cfg).With("game", gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fatal(logger, "create game", err)
	}

	if flagTUI {
		err := tui.Run(game, tui.ModelOptions{
			Messages: cfg.Messages,
			Invalid:  cfg.Input.Invalid,
			Palette:  theme.New(cfg.Theme),
			Logger:   logger,
		})
		if err != nil {
			fatal(logger, "tui", err)
		}
		return
	}

	palette := theme.Plain()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		palette = theme.New(cfg.Theme)
	}

	session := console.NewSession(
		game,
		console.NewLineReader(os.Stdin),
		console.NewTextRenderer(os.Stdout, palette),
		os.Stdout,
		console.Options{
			Messages: cfg.Messages,
			Invalid:  cfg.Input.Invalid,
			Logger:   logger,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The session blocks on stdin, so an interrupt is handled here rather
	// than between turns.
	errc := make(chan error, 1)
	go func() { errc <- session.Run(ctx) }()

	select {
	case <-ctx.Done():
		fmt.Fprintln(os.Stdout)
		logger.Info("interrupted")
	case err := <-errc:
		if err != nil && !errors.Is(err, context.Canceled) {
			fatal(logger, "game ended", err)
		}
	}
}
