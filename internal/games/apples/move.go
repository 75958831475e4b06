package apples

import "github.com/vovakirdan/applegrid/internal/core"

// MoveOutcome is the result of applying a command to the board.
type MoveOutcome struct {
	Direction core.Command
	Moved     bool // False when the move was rejected at the wall ring
}

// Apply moves the player one cell in the direction of cmd if the
// destination stays inside the interior. Rejected moves leave the board
// untouched and are not errors.
func Apply(cmd core.Command, b *Board) MoveOutcome {
	out := MoveOutcome{Direction: cmd}
	if cmd == core.CommandNone {
		return out
	}

	dest := b.player.Step(cmd)
	if !InInterior(dest) {
		return out
	}

	b.player = dest
	out.Moved = true
	return out
}

// CollectIfPresent removes the collectible under the player, if any, and
// reports whether one was taken. Calling it again on the same cell is a
// no-op.
func CollectIfPresent(b *Board) bool {
	if !b.collectibles.Has(b.player) {
		return false
	}
	b.collectibles.Remove(b.player)
	return true
}
