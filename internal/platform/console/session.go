package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/applegrid/internal/config"
	"github.com/vovakirdan/applegrid/internal/core"
	"github.com/vovakirdan/applegrid/internal/registry"
)

// Options configures a Session.
type Options struct {
	Messages config.MessagesConfig
	Invalid  config.InvalidPolicy
	Logger   *log.Logger
	Seed     int64 // 0 means seed from the clock
}

// Session drives one game from an InputSource to a Renderer until the input
// fails or the context is cancelled.
type Session struct {
	game     registry.Game
	in       InputSource
	renderer Renderer
	out      io.Writer
	msgs     config.MessagesConfig
	invalid  config.InvalidPolicy
	logger   *log.Logger
	seed     int64
}

// NewSession creates a session. Messages go to out; the board goes through
// renderer.
func NewSession(game registry.Game, in InputSource, renderer Renderer, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	invalid := opts.Invalid
	if invalid == "" {
		invalid = config.InvalidSkip
	}

	return &Session{
		game:     game,
		in:       in,
		renderer: renderer,
		out:      out,
		msgs:     opts.Messages,
		invalid:  invalid,
		logger:   logger,
		seed:     seed,
	}
}

// Run plays games back to back. Each win is announced and followed by a
// fresh board. Run only returns on an input, output or game error, or when
// ctx is cancelled between turns.
func (s *Session) Run(ctx context.Context) error {
	if err := s.game.Reset(core.RuntimeConfig{Seed: s.seed}); err != nil {
		return fmt.Errorf("console: start game: %w", err)
	}
	s.say(s.msgs.Welcome)

	for round := 1; ; round++ {
		logger := s.logger.With("round", round, "id", uuid.NewString())
		logger.Debug("round started")

		if err := s.playRound(ctx, logger); err != nil {
			return err
		}

		logger.Info("round won", "wins", s.game.State().Wins)
		if s.msgs.Won != "" {
			fmt.Fprintf(s.out, "\n%s\n\n", s.msgs.Won)
		}
	}
}

// playRound runs turns until the current game is won.
func (s *Session) playRound(ctx context.Context, logger *log.Logger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.renderer.Render(s.game.Grid()); err != nil {
			return err
		}
		if s.msgs.Prompt != "" {
			fmt.Fprint(s.out, s.msgs.Prompt)
		}

		line, err := s.in.ReadLine()
		if err != nil {
			return fmt.Errorf("console: read input: %w", err)
		}

		cmd, ok := core.DecodeCommand(line)
		if !ok {
			logger.Debug("unrecognized input", "input", strings.TrimSpace(line))
			if s.invalid == config.InvalidWarn {
				s.say(s.msgs.Invalid)
			}
			continue
		}

		res, err := s.game.Play(cmd)
		if err != nil {
			return fmt.Errorf("console: play turn: %w", err)
		}
		logger.Debug("turn", "command", cmd, "moved", res.Moved, "collected", res.Collected, "remaining", res.Remaining)

		if res.Moved {
			s.say(movedMessage(s.msgs.Moved, cmd))
		} else {
			s.say(s.msgs.Blocked)
		}
		if res.Collected {
			s.say(s.msgs.Collected)
		}
		if res.Won {
			return nil
		}
	}
}

// say prints a message line. Empty messages print nothing.
func (s *Session) say(msg string) {
	if msg == "" {
		return
	}
	fmt.Fprintln(s.out, msg)
}

// movedMessage fills the direction into tmpl when it has a %s verb.
func movedMessage(tmpl string, cmd core.Command) string {
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, cmd)
	}
	return tmpl
}
