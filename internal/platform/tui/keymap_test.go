package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/applegrid/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"w", runeKey('w'), core.CommandUp},
		{"s", runeKey('s'), core.CommandDown},
		{"a", runeKey('a'), core.CommandLeft},
		{"d", runeKey('d'), core.CommandRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandRight},
		{"uppercase W", runeKey('W'), core.CommandNone},
		{"x", runeKey('x'), core.CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Command(tt.msg); got != tt.expected {
				t.Errorf("Command(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(keys.ShortHelp()))
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 6 {
		t.Errorf("FullHelp() has %d bindings, expected 6", total)
	}
}
