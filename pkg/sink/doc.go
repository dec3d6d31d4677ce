// Package sink turns rendered layouts and plans into output files.
//
// # Overview
//
// A "sink" takes the output of the planning core and produces bytes:
//
//   - XLSX: the board and crate-layout sheets as a workbook
//   - JSON: the packing plan for other tools
//
// Sinks are pure: they return bytes and never touch the filesystem, so the
// caller can write all artifacts of a run at once or not at all.
//
// # XLSX Output
//
// [RenderXLSX] writes one board sheet and one layout sheet per
// [layout.Workbook], in order. Grid coordinates become A1 addresses here
// and nowhere else; border edges map to thin or thick cell borders.
//
//	data, err := sink.RenderXLSX(wb)
//
// # JSON Output
//
// [RenderJSON] exports half-boards, caliber rows, crates and extras. Rows
// are listed in the order they are rendered for the run's phase:
//
//	data, err := sink.RenderJSON(p, sink.WithJSONPhase(plan.PhaseFlipped))
//
// [layout.Workbook]: github.com/pyrolayout/boardplan/pkg/layout.Workbook
package sink
