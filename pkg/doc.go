// Package pkg provides the core libraries for boardplan.
//
// # Overview
//
// Boardplan turns a cue spreadsheet of firing positions into a layout plan
// for slave boards: how many guns of each caliber sit in each slot of every
// half-board, and how those guns are packed into crates made of 5-gun
// racks. The pkg directory is organized by pipeline stage:
//
//  1. [io] - Reading PIN/CAL/QTY records from xlsx and csv
//  2. [plan] - Half-board segmentation, rack grouping table, crate packing
//  3. [layout] - Board and crate-layout grids with the alternating row order
//  4. [sink] - xlsx and JSON encoders
//  5. [pipeline] - Orchestration (segment → group → render) and atomic writes
//
// Supporting packages: [errors] (error codes), [observability] (hooks),
// [buildinfo] (version).
//
// # Architecture
//
// The typical data flow:
//
//	cue spreadsheet
//	       ↓
//	  [io] package (records in input order)
//	       ↓
//	  [plan] package (half-boards, crates, extras)
//	       ↓
//	  [layout] package (row/column grids)
//	       ↓
//	  [sink] package (xlsx / json bytes)
//	       ↓
//	  fireworks_boards.xlsx
//
// # Quick Start
//
//	positions, _ := io.ImportFile("show.xlsx")
//	p, err := plan.Build(plan.KimBoard{}, positions)
//	if err != nil {
//	    log.Fatal(err) // BOUNDARY_VIOLATION or UNSUPPORTED_RACK_COUNT
//	}
//	wb := layout.Renderer{Model: plan.KimBoard{}}.Render(p, plan.PhaseNormal)
//	data, _ := sink.RenderXLSX(wb)
//
// Most callers should use [pipeline.Runner], which runs the same steps with
// logging, hooks and option defaults.
//
// [io]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/io
// [plan]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/plan
// [layout]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/layout
// [sink]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/pipeline#Runner
// [errors]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/errors
// [observability]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/pyrolayout/boardplan/pkg/buildinfo
package pkg
