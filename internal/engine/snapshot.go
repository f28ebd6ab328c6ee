package engine

import "strings"

// Snapshot is a read-only copy of one composed frame: locked blocks, borders
// and the active piece's falling cells.
type Snapshot struct {
	Width  int
	Height int
	Cells  []Cell // Row-major, Width*Height
	Piece  Piece
	State  State
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as empty.
func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return CellEmpty
	}
	return s.Cells[y*s.Width+x]
}

// String draws the frame with the conventional glyphs, one line per row.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(s.Width*s.Height + s.Height)
	for y := range s.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range s.Width {
			sb.WriteRune(s.At(x, y).Glyph())
		}
	}
	return sb.String()
}
