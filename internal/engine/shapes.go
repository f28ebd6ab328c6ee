// Package engine implements the falling-block playfield: the shape catalog,
// the grid with its collision oracle, line clearing, the gravity clock and the
// session state machine that ties them together.
//
// The engine has no terminal dependencies. The platform layer drives it by
// calling Session methods and renders the Snapshots it publishes.
package engine

import (
	"fmt"
	"strings"
)

const (
	// ShapeSize is the side of the square local frame every shape lives in.
	ShapeSize = 4

	// ShapeCount is the number of shapes in the catalog.
	ShapeCount = 7
)

// ShapeID identifies one of the catalog shapes, in [0, ShapeCount).
type ShapeID int

// mask is a shape's canonical orientation flattened row-major.
type mask [ShapeSize * ShapeSize]bool

var shapeLetters = [ShapeCount]string{"O", "L", "S", "Z", "I", "T", "J"}

var shapes = [ShapeCount]mask{
	parseMask(
		"....",
		".XX.",
		".XX.",
		"....",
	),
	parseMask(
		"....",
		".X..",
		".X..",
		".XX.",
	),
	parseMask(
		".X..",
		".XX.",
		"..X.",
		"....",
	),
	parseMask(
		"..X.",
		".XX.",
		".X..",
		"....",
	),
	parseMask(
		"..X.",
		"..X.",
		"..X.",
		"..X.",
	),
	parseMask(
		"..X.",
		".XX.",
		"..X.",
		"....",
	),
	parseMask(
		"....",
		"..X.",
		"..X.",
		".XX.",
	),
}

// parseMask builds a mask from ShapeSize rows where 'X' marks an occupied cell.
func parseMask(rows ...string) mask {
	if len(rows) != ShapeSize {
		panic(fmt.Sprintf("engine: shape mask needs %d rows, got %d", ShapeSize, len(rows)))
	}
	var m mask
	for y, row := range rows {
		if len(row) != ShapeSize {
			panic(fmt.Sprintf("engine: shape mask row %q must be %d wide", row, ShapeSize))
		}
		for x := range ShapeSize {
			m[y*ShapeSize+x] = row[x] == 'X'
		}
	}
	return m
}

// Shapes returns every shape id in catalog order.
func Shapes() []ShapeID {
	ids := make([]ShapeID, ShapeCount)
	for i := range ids {
		ids[i] = ShapeID(i)
	}
	return ids
}

// Valid reports whether the id names a catalog shape.
func (id ShapeID) Valid() bool {
	return id >= 0 && id < ShapeCount
}

// String returns the conventional letter of the shape.
func (id ShapeID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ShapeID(%d)", int(id))
	}
	return shapeLetters[id]
}

// normalizeRotation maps any rotation count onto 0..3.
func normalizeRotation(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// RotatedIndex maps a local (x, y) coordinate under the given rotation to an
// index into a shape's flattened mask. Each case is a closed-form permutation
// of 0..15 equivalent to turning the 4x4 frame clockwise in 90 degree steps.
//
// For x or y equal to ShapeSize the result aliases into a neighbouring row or
// leaves 0..15; ShapeCell never reads those indices.
func RotatedIndex(x, y, rotation int) int {
	switch normalizeRotation(rotation) {
	case 1:
		return 12 + y - 4*x
	case 2:
		return 15 - 4*y - x
	case 3:
		return 3 - y + 4*x
	default:
		return y*4 + x
	}
}

// ShapeCell reports whether the shape occupies local cell (x, y) when turned
// by rotation. Coordinates outside the 4x4 frame, including the collision
// probe's padding row and column, are never occupied.
func ShapeCell(id ShapeID, rotation, x, y int) bool {
	if !id.Valid() || x < 0 || x >= ShapeSize || y < 0 || y >= ShapeSize {
		return false
	}
	return shapes[id][RotatedIndex(x, y, rotation)]
}

// RenderShape draws the shape under rotation as ShapeSize lines of '#' and '.'.
func RenderShape(id ShapeID, rotation int) string {
	var sb strings.Builder
	for y := range ShapeSize {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range ShapeSize {
			if ShapeCell(id, rotation, x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
