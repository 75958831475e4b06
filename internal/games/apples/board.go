package apples

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/applegrid/internal/core"
)

const (
	// Size is the board edge length, wall ring included.
	Size = 8

	// InteriorMin and InteriorMax bound the playable rows and columns.
	InteriorMin = 1
	InteriorMax = Size - 2

	// CollectibleCount is the number of apples placed at the start of a game.
	CollectibleCount = 7
)

// Board holds the state of one game. The player position and the
// collectible set are authoritative; grid is a projection of them that
// Recompute rebuilds from scratch.
type Board struct {
	grid         [Size][Size]core.Cell
	collectibles mapset.Set[core.Position]
	player       core.Position
}

// NewBoard returns an unplaced board: no collectibles, the player parked on
// the (0,0) sentinel outside the interior, and every cell Empty.
func NewBoard() *Board {
	return &Board{
		collectibles: mapset.New[core.Position](),
		player:       core.Pos(0, 0),
	}
}

// Recompute rebuilds the derived grid. Player wins over collectible, which
// wins over wall, which wins over empty.
func (b *Board) Recompute() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := core.Pos(row, col)
			switch {
			case p == b.player:
				b.grid[row][col] = core.CellPlayer
			case b.collectibles.Has(p):
				b.grid[row][col] = core.CellCollectible
			case OnBoundary(p):
				b.grid[row][col] = core.CellWall
			default:
				b.grid[row][col] = core.CellEmpty
			}
		}
	}
}

// IsWon reports whether every collectible has been taken.
func (b *Board) IsWon() bool {
	return b.collectibles.Size() == 0
}

// Player returns the player's position.
func (b *Board) Player() core.Position {
	return b.player
}

// Remaining returns the number of collectibles left.
func (b *Board) Remaining() int {
	return b.collectibles.Size()
}

// HasCollectible reports whether a collectible sits at p.
func (b *Board) HasCollectible(p core.Position) bool {
	return b.collectibles.Has(p)
}

// Collectibles returns the collectible positions in row-major order.
func (b *Board) Collectibles() []core.Position {
	out := make([]core.Position, 0, b.collectibles.Size())
	b.collectibles.Each(func(p core.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}

// Cell returns the derived classification at p as of the last Recompute.
// Positions off the board read as walls.
func (b *Board) Cell(p core.Position) core.Cell {
	if !p.Within(0, Size-1) {
		return core.CellWall
	}
	return b.grid[p.Row][p.Col]
}

// Grid returns a copy of the derived grid as of the last Recompute.
func (b *Board) Grid() [Size][Size]core.Cell {
	return b.grid
}

// Rows returns the derived grid as a slice of rows.
func (b *Board) Rows() [][]core.Cell {
	rows := make([][]core.Cell, Size)
	for r := range rows {
		rows[r] = make([]core.Cell, Size)
		copy(rows[r], b.grid[r][:])
	}
	return rows
}

// InInterior reports whether p is a playable cell.
func InInterior(p core.Position) bool {
	return p.Within(InteriorMin, InteriorMax)
}

// OnBoundary reports whether p lies on the outer wall ring.
func OnBoundary(p core.Position) bool {
	return p.Within(0, Size-1) && !InInterior(p)
}
