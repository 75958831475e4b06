package core

// Cell classifies a single board cell for rendering. It is always derived
// from the authoritative player and collectible positions, never stored as
// truth on its own.
type Cell int

const (
	CellEmpty Cell = iota
	CellCollectible
	CellWall
	CellPlayer
)

// Glyph returns the one-character representation of the cell.
func (c Cell) Glyph() rune {
	switch c {
	case CellCollectible:
		return '*'
	case CellWall:
		return '#'
	case CellPlayer:
		return '@'
	default:
		return '.'
	}
}

// String returns a human-readable name for the cell kind.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellCollectible:
		return "collectible"
	case CellWall:
		return "wall"
	case CellPlayer:
		return "player"
	default:
		return "unknown"
	}
}
