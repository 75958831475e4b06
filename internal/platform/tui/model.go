package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/applegrid/internal/config"
	"github.com/vovakirdan/applegrid/internal/core"
	"github.com/vovakirdan/applegrid/internal/platform/theme"
	"github.com/vovakirdan/applegrid/internal/registry"
)

// ModelOptions configures a Model.
type ModelOptions struct {
	Messages config.MessagesConfig
	Invalid  config.InvalidPolicy
	Palette  theme.Palette
	Logger   *log.Logger
	Seed     int64 // 0 means seed from the clock
}

// errMsg carries a fatal game error into Update.
type errMsg struct{ err error }

var titleStyle = lipgloss.NewStyle().Bold(true)

// Model is the Bubble Tea model for one interactive game.
type Model struct {
	game     registry.Game
	palette  theme.Palette
	msgs     config.MessagesConfig
	invalid  config.InvalidPolicy
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	seed     int64
	status   []string // Messages from the last turn
	banner   string   // Win announcement, shown until the next turn
	err      error
	quitting bool
}

// NewModel creates a model for game. The game is reset in Init.
func NewModel(game registry.Game, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return Model{
		game:    game,
		palette: opts.Palette,
		msgs:    opts.Messages,
		invalid: opts.Invalid,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		seed:    seed,
		status:  nonEmpty(opts.Messages.Welcome),
	}
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	if err := m.game.Reset(core.RuntimeConfig{Seed: m.seed}); err != nil {
		return func() tea.Msg { return errMsg{err: err} }
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CommandNone {
		m.logger.Debug("unrecognized key", "key", msg.String())
		if m.invalid == config.InvalidWarn {
			m.status = nonEmpty(m.msgs.Invalid)
		}
		return m, nil
	}

	res, err := m.game.Play(cmd)
	if err != nil {
		m.err = fmt.Errorf("tui: play turn: %w", err)
		m.quitting = true
		return m, tea.Quit
	}
	m.logger.Debug("turn", "command", cmd, "moved", res.Moved, "collected", res.Collected, "remaining", res.Remaining)

	m.status = nil
	m.banner = ""
	if res.Moved {
		m.status = append(m.status, nonEmpty(movedMessage(m.msgs.Moved, cmd))...)
	} else {
		m.status = append(m.status, nonEmpty(m.msgs.Blocked)...)
	}
	if res.Collected {
		m.status = append(m.status, nonEmpty(m.msgs.Collected)...)
	}
	if res.Won {
		m.logger.Info("round won", "wins", m.game.State().Wins)
		m.banner = m.msgs.Won
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.game.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.game.Title()))
	b.WriteString(fmt.Sprintf("  apples left: %d  wins: %d\n\n", state.Remaining, state.Wins))
	b.WriteString(m.palette.Grid(m.game.Grid()))
	b.WriteString("\n\n")
	if m.banner != "" {
		b.WriteString(titleStyle.Render(m.banner))
		b.WriteString("\n")
	}
	for _, line := range m.status {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with a model for game.
func Run(game registry.Game, opts ModelOptions) error {
	p := tea.NewProgram(NewModel(game, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// movedMessage fills the direction into tmpl when it has a %s verb.
func movedMessage(tmpl string, cmd core.Command) string {
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, cmd)
	}
	return tmpl
}

func nonEmpty(msg string) []string {
	if msg == "" {
		return nil
	}
	return []string{msg}
}
