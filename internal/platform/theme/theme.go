// Package theme maps board cells to styled glyph strings.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/applegrid/internal/config"
	"github.com/vovakirdan/applegrid/internal/core"
)

// Palette renders cells as glyphs, optionally colored.
// The zero value renders plain glyphs.
type Palette struct {
	styles map[core.Cell]lipgloss.Style
}

// Plain returns a palette without colors.
func Plain() Palette {
	return Palette{}
}

// New returns a colored palette using the default lipgloss renderer.
func New(cfg config.ThemeConfig) Palette {
	return NewWithRenderer(cfg, lipgloss.DefaultRenderer())
}

// NewWithRenderer returns a colored palette bound to r, so color support is
// detected per output (one renderer per SSH session).
func NewWithRenderer(cfg config.ThemeConfig, r *lipgloss.Renderer) Palette {
	return Palette{
		styles: map[core.Cell]lipgloss.Style{
			core.CellPlayer:      r.NewStyle().Foreground(lipgloss.Color(cfg.Player)).Bold(true),
			core.CellCollectible: r.NewStyle().Foreground(lipgloss.Color(cfg.Collectible)),
			core.CellWall:        r.NewStyle().Foreground(lipgloss.Color(cfg.Wall)),
			core.CellEmpty:       r.NewStyle().Foreground(lipgloss.Color(cfg.Empty)),
		},
	}
}

// Glyph returns the styled glyph for c.
func (p Palette) Glyph(c core.Cell) string {
	g := string(c.Glyph())
	if style, ok := p.styles[c]; ok {
		return style.Render(g)
	}
	return g
}

// Row renders one row with glyphs separated by single spaces.
func (p Palette) Row(cells []core.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = p.Glyph(c)
	}
	return strings.Join(parts, " ")
}

// Grid renders every row, newline separated, without a trailing newline.
func (p Palette) Grid(rows [][]core.Cell) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = p.Row(row)
	}
	return strings.Join(lines, "\n")
}
