package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyle returns the lipgloss style for a cell color.
func colorStyle(c core.Color) lipgloss.Style {
	code, ok := ansiCodes[c]
	if !ok {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

const gameOverText = "Game over"

// DrawSnapshot draws one glyph per grid cell into scr, starting at its
// top-left corner. When the game is over the message is drawn in a blank
// band across the middle of the grid.
func DrawSnapshot(scr *core.Screen, snap engine.Snapshot, theme Theme) {
	for y := range snap.Height {
		for x := range snap.Width {
			g := theme.Glyph(snap.At(x, y))
			scr.SetColored(x, y, g.Rune, g.Color)
		}
	}

	if snap.State == engine.StateGameOver {
		// Blank three interior rows so the message stands out from the stack.
		box := core.NewRect(1, snap.Height/2-1, snap.Width-2, 3)
		scr.DrawRect(box, ' ')
		cx, cy := box.Center()
		x := core.Clamp(cx-len(gameOverText)/2, 0, core.Max(snap.Width-len(gameOverText), 0))
		scr.DrawTextColored(x, cy, gameOverText, core.ColorBrightYellow)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(colorStyle(color).Render(run.String()))
		}
	}
	return sb.String()
}
