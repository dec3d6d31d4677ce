package layout

import (
	"fmt"

	"github.com/pyrolayout/boardplan/pkg/plan"
)

// DefaultColWidth is the column width of both sheets.
const DefaultColWidth = 6

// Column positions on the board sheet.
const (
	colLabel     = 1 // A: caliber name, offset label
	colFirstSlot = 2 // B: slot 0
)

// Column positions on the crate-layout sheet.
const (
	colLayoutLabel = 1  // A: caliber name
	colFirstLane   = 3  // C: first lane of the first crate
	colBoardMarker = 4  // D: "board(+offset)"
	colFrameEnd    = 17 // Q: right edge of the board frame
	crateStride    = plan.RackSize + 1
	layoutBlock    = 6 // rows per caliber block
	markerBlock    = 2 // rows per board marker
)

// Cursor holds the next free row of the board grid and of the
// crate-layout grid.
type Cursor struct {
	BoardRow  int
	LayoutRow int
}

// NewCursor returns a cursor at the first row of both grids.
func NewCursor() Cursor { return Cursor{BoardRow: 1, LayoutRow: 1} }

// Workbook is the pair of grids rendered for one board model.
type Workbook struct {
	Board  *Grid
	Layout *Grid
}

// NewWorkbook returns empty grids titled after the model.
func NewWorkbook(m plan.BoardModel) *Workbook {
	return &Workbook{
		Board:  NewGrid(m.Title(), DefaultColWidth),
		Layout: NewGrid(m.Title()+" layout", DefaultColWidth),
	}
}

// Renderer draws plans for one board model.
type Renderer struct {
	Model  plan.BoardModel
	Labels plan.Labels
}

// Render draws a whole plan. The first half-board uses initial; the phase
// toggles after every half-board.
func (r Renderer) Render(p *plan.Plan, initial plan.Phase) *Workbook {
	wb := NewWorkbook(r.Model)
	cur := r.WriteHeader(wb, NewCursor())
	phase := initial
	for _, bp := range p.Boards {
		cur = r.RenderBoard(wb, cur, bp, phase)
		phase = phase.Next()
	}
	return wb
}

// countCol and leftoverCol follow the slot columns (AA and AB for 25 slots).
func (r Renderer) countCol() int    { return colFirstSlot + r.Model.Slots() }
func (r Renderer) leftoverCol() int { return r.countCol() + 1 }

// WriteHeader writes the board sheet's column header row.
func (r Renderer) WriteHeader(wb *Workbook, cur Cursor) Cursor {
	wb.Board.Set(cur.BoardRow, colLabel, "size")
	wb.Board.Set(cur.BoardRow, r.countCol(), "count")
	wb.Board.Set(cur.BoardRow, r.leftoverCol(), "leftover")
	cur.BoardRow++
	return cur
}

// RenderBoard draws one half-board on both grids using the row order of
// phase and returns the advanced cursor. Every half-board takes the same
// number of board rows whatever calibers it holds.
func (r Renderer) RenderBoard(wb *Workbook, cur Cursor, bp plan.BoardPlan, phase plan.Phase) Cursor {
	hb := bp.Board
	top := cur.BoardRow
	full := 2 * hb.Capacity()
	local := hb.Offset % full

	if local == 0 && hb.Offset != 0 {
		wb.Board.Set(top+1, colLabel, fmt.Sprintf("+%d", hb.Offset))
	}
	slots := hb.SlotCount()
	for i := 0; i < slots; i++ {
		wb.Board.Set(top+1, colFirstSlot+i, local+i+1)
		wb.Board.Set(top+2, colFirstSlot+i, local+slots+i+1)
	}

	cur = r.writeBoardMarker(wb.Layout, cur, hb.Offset)

	shifts := r.Model.RowShifts()
	n := 0
	for _, c := range phase.Order() {
		row, ok := bp.Row(c)
		if !ok {
			continue
		}
		if n >= len(shifts) {
			break
		}
		r.writeCountRow(wb.Board, top+shifts[n], row)
		n++
		cur = r.writeCrates(wb.Layout, cur, row, hb.Capacity())
	}

	cur.BoardRow = top + shifts[len(shifts)-1] + 1
	return cur
}

// writeCountRow writes a caliber's slot counts, total and leftover, and
// frames each closed crate's slot range.
func (r Renderer) writeCountRow(g *Grid, rowNum int, row plan.Row) {
	g.Set(rowNum, colLabel, r.Labels.Label(row.Caliber))
	for i, n := range row.Counts {
		if n > 0 {
			g.Set(rowNum, colFirstSlot+i, n)
		}
	}
	g.Set(rowNum, r.countCol(), row.Total)
	if row.Remainder > 0 {
		g.Set(rowNum, r.leftoverCol(), row.Remainder)
	}

	prevEnd := -1
	for _, c := range row.Crates {
		for s := c.StartSlot; s <= c.EndSlot; s++ {
			b := Border{Top: EdgeThin, Bottom: EdgeThin}
			if s == c.StartSlot {
				b.Left = EdgeThin
				if s == prevEnd {
					// two crates meet inside one slot
					b.Top, b.Bottom, b.Right = EdgeThick, EdgeThick, EdgeThin
				}
			}
			if s == c.EndSlot {
				b.Right = EdgeThin
			}
			g.SetBorder(rowNum, colFirstSlot+s, b)
		}
		prevEnd = c.EndSlot
	}
}

// writeBoardMarker writes the framed "board(+offset)" row.
func (r Renderer) writeBoardMarker(g *Grid, cur Cursor, offset int) Cursor {
	row := cur.LayoutRow
	g.Set(row, colBoardMarker, fmt.Sprintf("board(+%d)", offset))
	for col := colLayoutLabel; col <= colFrameEnd; col++ {
		b := Border{Top: EdgeThin, Bottom: EdgeThin}
		switch col {
		case colLayoutLabel:
			b.Left = EdgeThin
		case colFrameEnd:
			b.Right = EdgeThin
		}
		g.SetBorder(row, col, b)
	}
	cur.LayoutRow += markerBlock
	return cur
}

// writeCrates lays out one caliber row: five lane columns per crate, a gap
// column between crates and one trailing column for extras.
func (r Renderer) writeCrates(g *Grid, cur Cursor, row plan.Row, capacity int) Cursor {
	top := cur.LayoutRow
	g.Set(top+2, colLayoutLabel, r.Labels.Label(row.Caliber))

	col := colFirstLane
	for _, c := range row.Crates {
		for lane := 0; lane < plan.RackSize; lane++ {
			for j, id := range c.Lane(lane) {
				g.Set(top+j, col+lane, PositionLabel(id, capacity))
			}
		}
		col += crateStride
	}
	for i, id := range row.Extras.Positions {
		g.Set(top+i, col, PositionLabel(id, capacity))
	}

	cur.LayoutRow += layoutBlock
	return cur
}

// PositionLabel formats a position id for the crate sheet. Ids past the
// first half-board also show their number within the half-board:
// 73 -> "73(23)".
func PositionLabel(id, capacity int) string {
	if id > capacity {
		return fmt.Sprintf("%d(%d)", id, (id-1)%capacity+1)
	}
	return fmt.Sprintf("%d", id)
}
