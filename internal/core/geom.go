// Package core provides fundamental types shared by the game logic and the
// platform layers. It has no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "fmt"

// Position is a cell on the board addressed by row and column.
// Row 0 is the top edge, column 0 the left edge.
type Position struct {
	Row int
	Col int
}

// Pos creates a position from a row and column.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position one cell away in the direction of cmd.
// CommandNone returns p unchanged.
func (p Position) Step(cmd Command) Position {
	dr, dc := cmd.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Within reports whether both coordinates lie in [lo, hi].
func (p Position) Within(lo, hi int) bool {
	return p.Row >= lo && p.Row <= hi && p.Col >= lo && p.Col <= hi
}

// Less orders positions row-major. Used for stable listings.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
