package layout

import "sort"

// Coord is a 1-based (row, column) cell coordinate.
type Coord struct {
	Row, Col int
}

// Edge is the line style of one side of a cell border.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeThin
	EdgeThick
)

// Border describes the four edges of a cell.
type Border struct {
	Top, Bottom, Left, Right Edge
}

// IsZero reports whether no edge is drawn.
func (b Border) IsZero() bool { return b == Border{} }

// Cell is one grid cell. Value is nil, an int or a string.
type Cell struct {
	Value  any
	Border Border
}

// Placed is a cell together with its coordinate.
type Placed struct {
	Coord
	Cell
}

// Grid is a sparse sheet of cells.
type Grid struct {
	Name     string
	ColWidth float64

	cells map[Coord]*Cell
}

// NewGrid returns an empty grid.
func NewGrid(name string, colWidth float64) *Grid {
	return &Grid{Name: name, ColWidth: colWidth, cells: make(map[Coord]*Cell)}
}

func (g *Grid) cell(row, col int) *Cell {
	k := Coord{row, col}
	c, ok := g.cells[k]
	if !ok {
		c = &Cell{}
		g.cells[k] = c
	}
	return c
}

// Set stores a value, keeping any border already on the cell.
func (g *Grid) Set(row, col int, v any) { g.cell(row, col).Value = v }

// SetBorder replaces the border of a cell, keeping its value.
func (g *Grid) SetBorder(row, col int, b Border) { g.cell(row, col).Border = b }

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, bool) {
	c, ok := g.cells[Coord{row, col}]
	if !ok {
		return Cell{}, false
	}
	return *c, true
}

// Len returns the number of populated cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns all populated cells ordered by row, then column.
func (g *Grid) Cells() []Placed {
	out := make([]Placed, 0, len(g.cells))
	for k, c := range g.cells {
		out = append(out, Placed{Coord: k, Cell: *c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Bounds returns the highest populated row and column.
func (g *Grid) Bounds() (rows, cols int) {
	for k := range g.cells {
		if k.Row > rows {
			rows = k.Row
		}
		if k.Col > cols {
			cols = k.Col
		}
	}
	return rows, cols
}
