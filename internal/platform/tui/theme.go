package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Glyph is how one cell kind is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Theme contains all configurable visual styles for the game screen.
type Theme struct {
	Cells map[engine.Cell]Glyph

	// HUD styles
	Title    lipgloss.Style
	Status   lipgloss.Style
	Overlay  lipgloss.Style
	ErrorMsg lipgloss.Style
}

// NewTheme builds a theme from the configured glyphs and colors.
func NewTheme(cfg config.ThemeConfig) Theme {
	return Theme{
		Cells: map[engine.Cell]Glyph{
			engine.CellBorder:  {Rune: cfg.Border.Rune(), Color: cfg.Border.ColorValue()},
			engine.CellFalling: {Rune: cfg.Falling.Rune(), Color: cfg.Falling.ColorValue()},
			engine.CellLocked:  {Rune: cfg.Locked.Rune(), Color: cfg.Locked.ColorValue()},
			engine.CellEmpty:   {Rune: cfg.Empty.Rune(), Color: cfg.Empty.ColorValue()},
		},

		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Overlay:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultConfig().Theme)
}

// Glyph returns how c is drawn. Unknown kinds fall back to the cell's
// conventional glyph without color.
func (t Theme) Glyph(c engine.Cell) Glyph {
	if g, ok := t.Cells[c]; ok && g.Rune != 0 {
		return g
	}
	return Glyph{Rune: c.Glyph()}
}
