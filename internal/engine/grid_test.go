package engine

import (
	"strings"
	"testing"
)

const shapeI ShapeID = 4

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewGrid(Width, Height)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g
}

// lockRow fills the interior of row y with Locked cells except the listed columns.
func lockRow(g *Grid, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 1; x < g.Width()-1; x++ {
		if !skip[x] {
			g.set(x, y, CellLocked)
		}
	}
}

func TestNewGridBorders(t *testing.T) {
	g := newTestGrid(t)

	for y := range Height {
		for x := range Width {
			want := CellEmpty
			if x == 0 || x == Width-1 || y == Height-1 {
				want = CellBorder
			}
			if got := g.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestNewGridTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{2, 10},
		{10, 1},
		{0, 0},
	}
	for _, tc := range tests {
		if _, err := NewGrid(tc.w, tc.h); err == nil {
			t.Errorf("NewGrid(%d, %d) should fail", tc.w, tc.h)
		}
	}
}

func TestResetBordersKeepsLocked(t *testing.T) {
	g := newTestGrid(t)
	g.set(3, 5, CellLocked)
	g.set(4, 5, CellFalling)

	g.ResetBorders()

	if got := g.At(3, 5); got != CellLocked {
		t.Errorf("Locked cell was reset to %v", got)
	}
	if got := g.At(4, 5); got != CellEmpty {
		t.Errorf("Falling cell should be wiped, got %v", got)
	}
	if got := g.At(0, 5); got != CellBorder {
		t.Errorf("Border cell changed to %v", got)
	}
}

func TestSetNeverOverwritesBorder(t *testing.T) {
	g := newTestGrid(t)
	g.set(0, 3, CellLocked)
	g.set(5, Height-1, CellLocked)
	g.set(-1, 3, CellLocked)

	if g.At(0, 3) != CellBorder || g.At(5, Height-1) != CellBorder {
		t.Error("border cells must never change")
	}
}

func TestFits(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(g *Grid)
		shape    ShapeID
		rotation int
		col, row int
		expected bool
	}{
		{
			name:     "spawn on empty grid",
			shape:    shapeI,
			col:      Width/2 - 2,
			expected: true,
		},
		{
			name:     "overlaps left border",
			shape:    shapeI,
			col:      -2, // occupied column 2 lands on x=0
			expected: false,
		},
		{
			name:     "empty mask columns may hang outside the grid",
			shape:    shapeI,
			col:      -1,
			expected: true,
		},
		{
			name:     "overlaps floor",
			shape:    shapeI,
			col:      4,
			row:      Height - 4,
			expected: false,
		},
		{
			name:     "resting on floor",
			shape:    shapeI,
			col:      4,
			row:      Height - 5,
			expected: true,
		},
		{
			name:     "overlaps locked cell",
			prepare:  func(g *Grid) { g.set(6, 3, CellLocked) },
			shape:    shapeI,
			col:      4,
			expected: false,
		},
		{
			name:     "falling cells do not block",
			prepare:  func(g *Grid) { g.set(6, 3, CellFalling) },
			shape:    shapeI,
			col:      4,
			expected: true,
		},
		{
			name:     "locked cell next to piece",
			prepare:  func(g *Grid) { g.set(5, 3, CellLocked) },
			shape:    shapeI,
			col:      4,
			expected: true,
		},
		{
			name:     "rotated piece hits right border",
			shape:    shapeI,
			rotation: 1, // horizontal on local row 2, columns 0..3
			col:      Width - 4,
			expected: false,
		},
		{
			name:     "rotated piece fits against right border",
			shape:    shapeI,
			rotation: 1,
			col:      Width - 5,
			expected: true,
		},
		{
			name:     "occupied cells above the top are permitted",
			shape:    shapeI,
			col:      4,
			row:      -2,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGrid(t)
			if tc.prepare != nil {
				tc.prepare(g)
			}
			got := g.Fits(tc.shape, tc.rotation, tc.col, tc.row)
			if got != tc.expected {
				t.Errorf("Fits(%s, %d, %d, %d) = %v, want %v", tc.shape, tc.rotation, tc.col, tc.row, got, tc.expected)
			}
		})
	}
}

func TestStamp(t *testing.T) {
	g := newTestGrid(t)

	g.Stamp(shapeI, 0, 4, 0, false)
	for y := range 4 {
		if got := g.At(6, y); got != CellFalling {
			t.Errorf("At(6, %d) = %v, want Falling", y, got)
		}
	}

	g.ResetBorders()
	g.Stamp(shapeI, 1, 4, 10, true)
	for x := 4; x < 8; x++ {
		if got := g.At(x, 12); got != CellLocked {
			t.Errorf("At(%d, 12) = %v, want Locked", x, got)
		}
	}
	if got := g.At(6, 0); got != CellEmpty {
		t.Errorf("stale falling cell survived ResetBorders: %v", got)
	}
}

func TestStampClipsOutsideGrid(t *testing.T) {
	g := newTestGrid(t)

	// Two cells sit above row 0; stamping must not panic or wrap.
	g.Stamp(shapeI, 0, 4, -2, true)

	if g.At(6, 0) != CellLocked || g.At(6, 1) != CellLocked {
		t.Error("in-bounds cells should be stamped")
	}
	if g.At(6, 2) != CellEmpty {
		t.Error("stamp wrote past the piece")
	}
}

func TestGridCellsIsCopy(t *testing.T) {
	g := newTestGrid(t)
	cells := g.Cells()
	cells[Width+1] = CellLocked

	if g.At(1, 1) != CellEmpty {
		t.Error("Cells() must return a copy")
	}
}

func TestCellGlyphs(t *testing.T) {
	var sb strings.Builder
	for _, c := range []Cell{CellEmpty, CellBorder, CellLocked, CellFalling} {
		sb.WriteRune(c.Glyph())
	}
	if sb.String() != ".#OA" {
		t.Errorf("glyphs = %q, want %q", sb.String(), ".#OA")
	}
}
