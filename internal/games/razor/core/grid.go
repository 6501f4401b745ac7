package core

import "fmt"

// Grid is a rectangular board of cell states.
// Cells are stored in row-major order: index = Row*W + Col.
type Grid struct {
	W     int
	H     int
	Cells []CellState
}

// NewGrid creates a grid with every cell set to Empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]CellState, w*h),
	}
}

// NewGridFromRows builds a grid from a slice of rows, top row first.
// All rows must have the same length.
func NewGridFromRows(rows [][]CellState) *Grid {
	if len(rows) == 0 {
		return NewGrid(0, 0)
	}
	g := NewGrid(len(rows[0]), len(rows))
	for row, cells := range rows {
		if len(cells) != g.W {
			panic(fmt.Sprintf("grid: row %d has %d cells, want %d", row, len(cells), g.W))
		}
		copy(g.Cells[row*g.W:], cells)
	}
	return g
}

// InBounds returns true if the index is within the grid boundaries.
func (g *Grid) InBounds(i Index) bool {
	return i.Col >= 0 && i.Col < g.W && i.Row >= 0 && i.Row < g.H
}

// offset converts an index to a position in Cells, panicking when out of bounds.
func (g *Grid) offset(i Index) int {
	if !g.InBounds(i) {
		panic(fmt.Sprintf("grid: index (%d,%d) out of bounds %dx%d", i.Col, i.Row, g.W, g.H))
	}
	return i.Row*g.W + i.Col
}

// At returns the cell at the given index.
func (g *Grid) At(i Index) CellState {
	return g.Cells[g.offset(i)]
}

// Set stores a cell state at the given index.
func (g *Grid) Set(i Index, s CellState) {
	g.Cells[g.offset(i)] = s
}

// Find returns the indices of all cells holding s, in row-major order.
func (g *Grid) Find(s CellState) []Index {
	var found []Index
	for off, cell := range g.Cells {
		if cell == s {
			found = append(found, Index{Col: off % g.W, Row: off / g.W})
		}
	}
	return found
}

// Count returns the number of cells holding s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, cell := range g.Cells {
		if cell == s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
