package apples

import (
	"testing"

	"github.com/vovakirdan/applegrid/internal/core"
)

// boardWith builds a board with a fixed layout and a recomputed grid.
func boardWith(player core.Position, collectibles ...core.Position) *Board {
	b := NewBoard()
	for _, p := range collectibles {
		b.collectibles.Put(p)
	}
	b.player = player
	b.Recompute()
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	if b.Player() != core.Pos(0, 0) {
		t.Errorf("Player() = %v, expected sentinel (0,0)", b.Player())
	}
	if b.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0", b.Remaining())
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if c := b.Cell(core.Pos(row, col)); c != core.CellEmpty {
				t.Errorf("new board cell (%d,%d) = %v, expected empty", row, col, c)
			}
		}
	}
}

func TestRecomputeClassification(t *testing.T) {
	b := boardWith(core.Pos(2, 3), core.Pos(4, 4), core.Pos(6, 1))

	tests := []struct {
		name     string
		p        core.Position
		expected core.Cell
	}{
		{"player", core.Pos(2, 3), core.CellPlayer},
		{"collectible", core.Pos(4, 4), core.CellCollectible},
		{"collectible near wall", core.Pos(6, 1), core.CellCollectible},
		{"top-left corner", core.Pos(0, 0), core.CellWall},
		{"top wall", core.Pos(0, 4), core.CellWall},
		{"bottom wall", core.Pos(7, 2), core.CellWall},
		{"left wall", core.Pos(5, 0), core.CellWall},
		{"right wall", core.Pos(3, 7), core.CellWall},
		{"empty interior", core.Pos(3, 3), core.CellEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c := b.Cell(tc.p); c != tc.expected {
				t.Errorf("Cell(%v) = %v, expected %v", tc.p, c, tc.expected)
			}
		})
	}
}

func TestRecomputeWallRingNeverPlayerOrCollectible(t *testing.T) {
	b := boardWith(core.Pos(1, 1), core.Pos(1, 6), core.Pos(6, 6), core.Pos(6, 1))

	for i := 0; i < Size; i++ {
		for _, p := range []core.Position{core.Pos(0, i), core.Pos(Size-1, i), core.Pos(i, 0), core.Pos(i, Size-1)} {
			if c := b.Cell(p); c != core.CellWall {
				t.Errorf("boundary cell %v = %v, expected wall", p, c)
			}
		}
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	b := boardWith(core.Pos(3, 3), core.Pos(1, 2), core.Pos(5, 5))

	first := b.Grid()
	b.Recompute()
	second := b.Grid()

	if first != second {
		t.Error("Recompute() without state changes should produce an identical grid")
	}
}

func TestRecomputeLeavesNoStaleCells(t *testing.T) {
	b := boardWith(core.Pos(3, 3), core.Pos(3, 4))

	// Move the player onto the collectible and take it.
	b.player = core.Pos(3, 4)
	CollectIfPresent(b)
	b.Recompute()

	if c := b.Cell(core.Pos(3, 3)); c != core.CellEmpty {
		t.Errorf("old player cell = %v, expected empty", c)
	}
	if c := b.Cell(core.Pos(3, 4)); c != core.CellPlayer {
		t.Errorf("new player cell = %v, expected player", c)
	}
}

func TestRecomputePlayerOverCollectible(t *testing.T) {
	b := boardWith(core.Pos(2, 2), core.Pos(2, 2))

	if c := b.Cell(core.Pos(2, 2)); c != core.CellPlayer {
		t.Errorf("shared cell = %v, expected player to win", c)
	}
}

func TestIsWon(t *testing.T) {
	if !boardWith(core.Pos(3, 3)).IsWon() {
		t.Error("board without collectibles should be won")
	}
	if boardWith(core.Pos(3, 3), core.Pos(4, 4)).IsWon() {
		t.Error("board with a collectible should not be won")
	}
}

func TestCollectiblesSorted(t *testing.T) {
	b := boardWith(core.Pos(1, 1), core.Pos(5, 2), core.Pos(2, 6), core.Pos(2, 1))

	got := b.Collectibles()
	expected := []core.Position{core.Pos(2, 1), core.Pos(2, 6), core.Pos(5, 2)}
	if len(got) != len(expected) {
		t.Fatalf("Collectibles() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Collectibles()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestRowsIsCopy(t *testing.T) {
	b := boardWith(core.Pos(3, 3))

	rows := b.Rows()
	if len(rows) != Size || len(rows[0]) != Size {
		t.Fatalf("Rows() dimensions = %dx%d, expected %dx%d", len(rows), len(rows[0]), Size, Size)
	}
	rows[3][3] = core.CellWall
	if b.Cell(core.Pos(3, 3)) != core.CellPlayer {
		t.Error("mutating Rows() output must not change the board")
	}
}

func TestBoundaryHelpers(t *testing.T) {
	if !OnBoundary(core.Pos(0, 3)) || !OnBoundary(core.Pos(7, 7)) {
		t.Error("ring cells should be on the boundary")
	}
	if OnBoundary(core.Pos(3, 3)) {
		t.Error("interior cell should not be on the boundary")
	}
	if OnBoundary(core.Pos(8, 3)) {
		t.Error("off-board cell should not be on the boundary")
	}
	if !InInterior(core.Pos(6, 1)) || InInterior(core.Pos(7, 1)) {
		t.Error("InInterior() should accept [1,6] only")
	}
}
