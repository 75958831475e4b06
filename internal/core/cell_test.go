package core

import "testing"

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		cell     Cell
		expected rune
	}{
		{CellEmpty, '.'},
		{CellCollectible, '*'},
		{CellWall, '#'},
		{CellPlayer, '@'},
	}

	for _, tc := range tests {
		t.Run(tc.cell.String(), func(t *testing.T) {
			if g := tc.cell.Glyph(); g != tc.expected {
				t.Errorf("Glyph() = %q, expected %q", g, tc.expected)
			}
		})
	}
}
