package plan

// BoardPlan is a half-board together with the grouping of each caliber on it.
type BoardPlan struct {
	Board *HalfBoard
	Rows  []Row // one per caliber present, largest code first
}

// Row returns the grouping for caliber c, if present.
func (b BoardPlan) Row(c Caliber) (Row, bool) {
	for _, r := range b.Rows {
		if r.Caliber == c {
			return r, true
		}
	}
	return Row{}, false
}

// Plan is the complete packing plan for one board model.
type Plan struct {
	Model  BoardModel
	Boards []BoardPlan
}

// Stats summarises a plan per caliber.
type Stats struct {
	HalfBoards int
	Guns       map[Caliber]int
	Crates     map[Caliber]int
	Racks      map[Caliber]int
	Extras     map[Caliber]int
}

// Build segments positions and groups every caliber row of every half-board.
// It returns the first error encountered and no partial plan.
func Build(m BoardModel, positions []Position) (*Plan, error) {
	boards, err := Segment(m, positions)
	if err != nil {
		return nil, err
	}

	p := &Plan{Model: m, Boards: make([]BoardPlan, 0, len(boards))}
	for _, hb := range boards {
		bp, err := GroupBoard(hb)
		if err != nil {
			return nil, err
		}
		p.Boards = append(p.Boards, bp)
	}
	return p, nil
}

// GroupBoard groups every caliber present on hb.
func GroupBoard(hb *HalfBoard) (BoardPlan, error) {
	bp := BoardPlan{Board: hb}
	for _, c := range hb.Calibers() {
		row, err := GroupCrates(hb, c)
		if err != nil {
			return BoardPlan{}, err
		}
		bp.Rows = append(bp.Rows, row)
	}
	return bp, nil
}

// Stats computes per-caliber totals over the plan.
func (p *Plan) Stats() Stats {
	s := Stats{
		HalfBoards: len(p.Boards),
		Guns:       make(map[Caliber]int),
		Crates:     make(map[Caliber]int),
		Racks:      make(map[Caliber]int),
		Extras:     make(map[Caliber]int),
	}
	for _, b := range p.Boards {
		for _, r := range b.Rows {
			s.Guns[r.Caliber] += r.Total
			s.Crates[r.Caliber] += len(r.Crates)
			s.Racks[r.Caliber] += r.FullRacks
			s.Extras[r.Caliber] += len(r.Extras.Positions)
		}
	}
	return s
}
