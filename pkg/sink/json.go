package sink

import (
	"encoding/json"

	"github.com/pyrolayout/boardplan/pkg/plan"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	phase  plan.Phase
	labels plan.Labels
}

// WithJSONPhase sets the phase of the first half-board. Rows of each board
// are emitted in that board's phase order.
func WithJSONPhase(p plan.Phase) JSONOption { return func(r *jsonRenderer) { r.phase = p } }

// WithJSONLabels sets the caliber display names recorded in the output.
func WithJSONLabels(l plan.Labels) JSONOption { return func(r *jsonRenderer) { r.labels = l } }

type jsonOutput struct {
	Model        string      `json:"model"`
	InitialPhase int         `json:"initial_phase"`
	Boards       []jsonBoard `json:"boards"`
}

type jsonBoard struct {
	Offset      int       `json:"offset"`
	TopPosition int       `json:"top_position"`
	Phase       int       `json:"phase"`
	Rows        []jsonRow `json:"rows"`
}

type jsonRow struct {
	Caliber   int         `json:"caliber"`
	Label     string      `json:"label"`
	Counts    []int       `json:"counts"`
	Total     int         `json:"total"`
	FullRacks int         `json:"full_racks"`
	Remainder int         `json:"remainder"`
	Crates    []jsonCrate `json:"crates"`
	Extras    []int       `json:"extras"`
}

type jsonCrate struct {
	Racks     int   `json:"racks"`
	StartSlot int   `json:"start_slot"`
	EndSlot   int   `json:"end_slot"`
	Positions []int `json:"positions"`
}

// RenderJSON exports the plan as indented JSON.
func RenderJSON(p *plan.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Model:        p.Model.Name(),
		InitialPhase: int(r.phase),
		Boards:       make([]jsonBoard, 0, len(p.Boards)),
	}
	for k, bp := range p.Boards {
		phase := plan.PhaseAt(r.phase, k)
		jb := jsonBoard{
			Offset:      bp.Board.Offset,
			TopPosition: bp.Board.TopPosition(),
			Phase:       int(phase),
			Rows:        []jsonRow{},
		}
		for _, c := range phase.Order() {
			row, ok := bp.Row(c)
			if !ok {
				continue
			}
			jb.Rows = append(jb.Rows, r.row(row))
		}
		out.Boards = append(out.Boards, jb)
	}

	return json.MarshalIndent(out, "", "  ")
}

func (r jsonRenderer) row(row plan.Row) jsonRow {
	jr := jsonRow{
		Caliber:   int(row.Caliber),
		Label:     r.labels.Label(row.Caliber),
		Counts:    row.Counts,
		Total:     row.Total,
		FullRacks: row.FullRacks,
		Remainder: row.Remainder,
		Crates:    make([]jsonCrate, 0, len(row.Crates)),
		Extras:    row.Extras.Positions,
	}
	for _, c := range row.Crates {
		jr.Crates = append(jr.Crates, jsonCrate{
			Racks:     c.RackCount,
			StartSlot: c.StartSlot,
			EndSlot:   c.EndSlot,
			Positions: c.Positions,
		})
	}
	return jr
}
