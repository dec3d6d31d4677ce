// Package layout renders a [plan.Plan] into two grids: the board sheet with
// per-slot gun counts and the crate-layout sheet that shows which position
// goes into which rack lane of which crate.
//
// Grids are plain (row, column) cell maps with 1-based coordinates. They
// know nothing about spreadsheet addresses or file formats; the sink
// package turns them into a workbook.
//
// Rendering is driven by a [Cursor] holding the next free row of each
// grid. Every render call takes a cursor and returns the advanced one, so
// a half-board can be rendered in isolation:
//
//	r := layout.Renderer{Model: plan.KimBoard{}}
//	wb := layout.NewWorkbook(r.Model)
//	cur := r.WriteHeader(wb, layout.NewCursor())
//	cur = r.RenderBoard(wb, cur, p.Boards[0], plan.PhaseNormal)
//
// [plan.Plan]: github.com/pyrolayout/boardplan/pkg/plan.Plan
package layout
