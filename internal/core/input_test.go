package core

import "testing"

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Command
		ok       bool
	}{
		{"w is up", "w", CommandUp, true},
		{"s is down", "s", CommandDown, true},
		{"a is left", "a", CommandLeft, true},
		{"d is right", "d", CommandRight, true},
		{"trailing newline", "a\n", CommandLeft, true},
		{"windows newline", "d\r\n", CommandRight, true},
		{"surrounding spaces", "  w  ", CommandUp, true},
		{"unknown letter", "q", CommandNone, false},
		{"uppercase", "W", CommandNone, false},
		{"two tokens", "w w", CommandNone, false},
		{"word", "up", CommandNone, false},
		{"empty", "", CommandNone, false},
		{"only newline", "\n", CommandNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := DecodeCommand(tc.raw)
			if cmd != tc.expected || ok != tc.ok {
				t.Errorf("DecodeCommand(%q) = (%v, %v), expected (%v, %v)", tc.raw, cmd, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestCommandKeyRoundTrip(t *testing.T) {
	for _, cmd := range []Command{CommandUp, CommandDown, CommandLeft, CommandRight} {
		decoded, ok := DecodeCommand(cmd.Key())
		if !ok || decoded != cmd {
			t.Errorf("DecodeCommand(%q) = (%v, %v), expected (%v, true)", cmd.Key(), decoded, ok, cmd)
		}
	}
	if CommandNone.Key() != "" {
		t.Error("CommandNone should have no key")
	}
}

func TestCommandString(t *testing.T) {
	if CommandUp.String() != "up" {
		t.Errorf("CommandUp.String() = %q, expected %q", CommandUp.String(), "up")
	}
	if Command(42).String() != "unknown" {
		t.Errorf("Command(42).String() = %q, expected %q", Command(42).String(), "unknown")
	}
}
