package core

import "strings"

// Command is a decoded movement intent, abstracted from the raw text or key
// that produced it.
type Command int

const (
	CommandNone  Command = iota
	CommandUp            // w
	CommandDown          // s
	CommandLeft          // a
	CommandRight         // d
)

// DecodeCommand maps a raw line of input to a command.
// Surrounding whitespace (including the trailing newline) is ignored. Only
// the exact tokens "w", "s", "a" and "d" are recognized; anything else
// returns CommandNone and false.
func DecodeCommand(raw string) (Command, bool) {
	switch strings.TrimSpace(raw) {
	case "w":
		return CommandUp, true
	case "s":
		return CommandDown, true
	case "a":
		return CommandLeft, true
	case "d":
		return CommandRight, true
	default:
		return CommandNone, false
	}
}

// Delta returns the row and column offsets of a one-cell move.
func (c Command) Delta() (dr, dc int) {
	switch c {
	case CommandUp:
		return -1, 0
	case CommandDown:
		return 1, 0
	case CommandLeft:
		return 0, -1
	case CommandRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Key returns the input token that decodes to this command.
func (c Command) Key() string {
	switch c {
	case CommandUp:
		return "w"
	case CommandDown:
		return "s"
	case CommandLeft:
		return "a"
	case CommandRight:
		return "d"
	default:
		return ""
	}
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	default:
		return "unknown"
	}
}
