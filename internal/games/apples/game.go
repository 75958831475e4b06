// Package apples implements the apple-collecting grid game: a player walks
// an 8x8 walled board, eats every apple, and the board is re-randomized.
package apples

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/applegrid/internal/core"
	"github.com/vovakirdan/applegrid/internal/registry"
)

// GameID is the registry identifier of this game.
const GameID = "apples"

// Phase is the position of the game in its turn cycle.
type Phase int

const (
	PhaseAwaitingInput Phase = iota
	PhaseValidating
	PhaseApplying
	PhaseCheckingWin
	PhaseRestarting
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseValidating:
		return "validating"
	case PhaseApplying:
		return "applying"
	case PhaseCheckingWin:
		return "checking_win"
	case PhaseRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// ErrNotStarted is returned by Play before the first successful Reset.
var ErrNotStarted = errors.New("apples: game not started")

// Game implements the apple grid game.
type Game struct {
	rng   *rand.Rand
	board *Board
	phase Phase
	turns int // Recognized turns in the current game
	wins  int // Games won since Reset
}

// New creates a game. Reset must be called before Play.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Apple Grid"
}

// Reset seeds the random source and starts a fresh game.
// The win counter is cleared.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.wins = 0
	return g.restart()
}

// restart discards the current board and generates a new one.
func (g *Game) restart() error {
	g.phase = PhaseRestarting
	board, err := Generate(g.rng)
	if err != nil {
		return fmt.Errorf("apples: generate board: %w", err)
	}
	g.board = board
	g.turns = 0
	g.phase = PhaseAwaitingInput
	return nil
}

// Turn decodes one raw line of input and plays it.
func (g *Game) Turn(raw string) (core.TurnResult, error) {
	cmd, _ := core.DecodeCommand(raw)
	return g.Play(cmd)
}

// Play runs one turn: validate, apply, collect, check for a win, and
// restart on a win. CommandNone is an unrecognized turn and changes nothing.
func (g *Game) Play(cmd core.Command) (core.TurnResult, error) {
	if g.board == nil {
		return core.TurnResult{}, ErrNotStarted
	}

	g.phase = PhaseValidating
	if cmd == core.CommandNone {
		g.phase = PhaseAwaitingInput
		return core.TurnResult{Remaining: g.board.Remaining()}, nil
	}

	g.phase = PhaseApplying
	outcome := Apply(cmd, g.board)
	collected := CollectIfPresent(g.board)
	g.turns++

	res := core.TurnResult{
		Recognized: true,
		Command:    outcome.Direction,
		Moved:      outcome.Moved,
		Collected:  collected,
		Remaining:  g.board.Remaining(),
	}

	g.phase = PhaseCheckingWin
	if g.board.IsWon() {
		g.wins++
		res.Won = true
		if err := g.restart(); err != nil {
			return res, err
		}
		res.Restarted = true
		return res, nil
	}

	g.board.Recompute()
	g.phase = PhaseAwaitingInput
	return res, nil
}

// Board returns the current board. It is replaced, not mutated, on restart.
func (g *Game) Board() *Board {
	return g.board
}

// Grid returns the derived grid of the current board.
func (g *Game) Grid() [][]core.Cell {
	if g.board == nil {
		return nil
	}
	g.board.Recompute()
	return g.board.Rows()
}

// Phase returns the current turn phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Turns: g.turns,
		Wins:  g.wins,
	}
	if g.board != nil {
		state.Remaining = g.board.Remaining()
	}
	return state
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Phase: %s, Turns: %d, Wins: %d\n", g.phase, g.turns, g.wins))
	if g.board != nil {
		b.WriteString(fmt.Sprintf("Player: %s, Apples: %v\n", g.board.Player(), g.board.Collectibles()))
	}
	return b.String()
}
