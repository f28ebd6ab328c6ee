package engine

import "fmt"

// Playfield dimensions. The outer ring (columns 0 and Width-1, row Height-1)
// is border; the rest is the play area.
const (
	Width  = 12
	Height = 18
)

// Cell is the kind of a single playfield cell.
type Cell uint8

const (
	CellEmpty   Cell = iota // No block
	CellBorder              // Permanent wall or floor
	CellLocked              // Block left behind by a landed piece
	CellFalling             // Block of the active piece, redrawn every frame
)

// String returns a human-readable name for the cell kind.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellBorder:
		return "Border"
	case CellLocked:
		return "Locked"
	case CellFalling:
		return "Falling"
	default:
		return "Unknown"
	}
}

// Glyph returns the conventional glyph for the cell kind.
func (c Cell) Glyph() rune {
	switch c {
	case CellBorder:
		return '#'
	case CellLocked:
		return 'O'
	case CellFalling:
		return 'A'
	default:
		return '.'
	}
}

// Grid is the playfield buffer.
type Grid struct {
	width  int
	height int
	cells  []Cell // Row-major, width*height
}

// NewGrid allocates a border-initialized grid.
// The grid needs at least one interior column and one row above the floor.
func NewGrid(width, height int) (*Grid, error) {
	if width < 3 || height < 2 {
		return nil, fmt.Errorf("engine: grid %dx%d is too small (minimum 3x2)", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.ResetBorders()
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) isBorder(x, y int) bool {
	return x == 0 || x == g.width-1 || y == g.height-1
}

// At returns the cell at (x, y). Out-of-bounds coordinates read as empty.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return CellEmpty
	}
	return g.cells[y*g.width+x]
}

// set writes an interior cell. Border and out-of-bounds cells are left alone.
func (g *Grid) set(x, y int, c Cell) {
	if !g.inBounds(x, y) || g.isBorder(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Cells returns a row-major copy of the buffer.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// ResetBorders rewrites every cell that is not Locked: border positions
// become Border, everything else Empty. This wipes last frame's Falling cells.
func (g *Grid) ResetBorders() {
	for y := range g.height {
		for x := range g.width {
			i := y*g.width + x
			if g.cells[i] == CellLocked {
				continue
			}
			if g.isBorder(x, y) {
				g.cells[i] = CellBorder
			} else {
				g.cells[i] = CellEmpty
			}
		}
	}
}

// Fits reports whether the shape, turned by rotation, can sit with its local
// origin at (col, row). The probe covers the local frame plus one padding
// row and column. Only occupied cells landing on an in-bounds Border or
// Locked cell reject the placement; cells outside the grid do not.
func (g *Grid) Fits(id ShapeID, rotation, col, row int) bool {
	for x := 0; x <= ShapeSize; x++ {
		for y := 0; y <= ShapeSize; y++ {
			if !ShapeCell(id, rotation, x, y) {
				continue
			}
			ax, ay := col+x, row+y
			if !g.inBounds(ax, ay) {
				continue
			}
			switch g.cells[ay*g.width+ax] {
			case CellBorder, CellLocked:
				return false
			}
		}
	}
	return true
}

// Stamp writes the shape's occupied cells as Locked or Falling.
// Cells outside the grid are skipped and Border cells are never overwritten.
func (g *Grid) Stamp(id ShapeID, rotation, col, row int, locked bool) {
	kind := CellFalling
	if locked {
		kind = CellLocked
	}
	for x := range ShapeSize {
		for y := range ShapeSize {
			if ShapeCell(id, rotation, x, y) {
				g.set(col+x, row+y, kind)
			}
		}
	}
}
