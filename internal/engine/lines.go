package engine

// FullRow returns the first row, scanning top to bottom above the floor,
// whose interior cells are all Locked.
func (g *Grid) FullRow() (int, bool) {
	for y := 0; y < g.height-1; y++ {
		if g.rowFull(y) {
			return y, true
		}
	}
	return -1, false
}

func (g *Grid) rowFull(y int) bool {
	for x := 1; x < g.width-1; x++ {
		if g.cells[y*g.width+x] != CellLocked {
			return false
		}
	}
	return true
}

// ClearRow removes the row by shifting every interior row above it down by
// one. The top row's interior is emptied afterwards.
func (g *Grid) ClearRow(row int) {
	if row < 0 || row >= g.height-1 {
		return
	}
	for y := row; y > 0; y-- {
		dst := y * g.width
		src := (y - 1) * g.width
		copy(g.cells[dst+1:dst+g.width-1], g.cells[src+1:src+g.width-1])
	}
	for x := 1; x < g.width-1; x++ {
		g.cells[x] = CellEmpty
	}
}

// ClearFullRows clears full rows until none remain and returns how many
// were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for {
		row, ok := g.FullRow()
		if !ok {
			return cleared
		}
		g.ClearRow(row)
		cleared++
	}
}
