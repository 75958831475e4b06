package console

import (
	"fmt"
	"io"

	"github.com/vovakirdan/applegrid/internal/core"
	"github.com/vovakirdan/applegrid/internal/platform/theme"
)

// Renderer draws a board snapshot.
type Renderer interface {
	Render(grid [][]core.Cell) error
}

// TextRenderer writes one line per board row, glyphs separated by spaces.
type TextRenderer struct {
	w       io.Writer
	palette theme.Palette
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer, palette theme.Palette) *TextRenderer {
	return &TextRenderer{w: w, palette: palette}
}

// Render writes the grid followed by a newline.
func (r *TextRenderer) Render(grid [][]core.Cell) error {
	if _, err := fmt.Fprintln(r.w, r.palette.Grid(grid)); err != nil {
		return fmt.Errorf("console: render: %w", err)
	}
	return nil
}
