package plan

import (
	"fmt"

	"github.com/pyrolayout/boardplan/pkg/errors"
)

// Crate holds RackCount whole racks of one caliber. Positions are in fill
// order and always number RackSize*RackCount. StartSlot and EndSlot are the
// first and last slot the crate drew positions from.
type Crate struct {
	Caliber   Caliber
	Positions []int
	RackCount int
	StartSlot int
	EndSlot   int
}

// Lane returns the positions loaded into rack position i (0..RackSize-1):
// Positions[i*RackCount : (i+1)*RackCount].
func (c Crate) Lane(i int) []int {
	if i < 0 || i >= RackSize {
		return nil
	}
	return c.Positions[i*c.RackCount : (i+1)*c.RackCount]
}

// Extras holds the positions of a caliber row that do not fill a rack.
type Extras struct {
	Caliber   Caliber
	Positions []int
}

// Row is the grouping result for one caliber on one half-board.
type Row struct {
	Caliber   Caliber
	Counts    []int // guns per slot
	Total     int
	FullRacks int
	Remainder int
	Crates    []Crate
	Extras    Extras
}

// GroupCrates splits the caliber-c positions of hb into crates sized by
// [CrateGroups] and an extras bucket.
//
// Positions are consumed in slot order. Each crate closes once it holds
// RackSize times its table entry; whatever follows the last table entry is
// the remainder and goes to extras. A caliber row with more full racks than
// the table covers fails with UNSUPPORTED_RACK_COUNT.
func GroupCrates(hb *HalfBoard, c Caliber) (Row, error) {
	row := Row{
		Caliber: c,
		Counts:  hb.Counts(c),
		Total:   hb.Total(c),
		Extras:  Extras{Caliber: c, Positions: []int{}},
	}
	row.FullRacks = row.Total / RackSize
	row.Remainder = row.Total - row.FullRacks*RackSize

	var groups []int
	if row.FullRacks > 0 {
		var ok bool
		groups, ok = CrateGroups(row.FullRacks)
		if !ok {
			return Row{}, errors.New(errors.ErrCodeUnsupportedRackCount,
				"half-board +%d caliber %d: %d guns make %d full racks, no crate grouping for more than %d",
				hb.Offset, int(c), row.Total, row.FullRacks, MaxFullRacks())
		}
	}

	var (
		cur  *Crate
		next int
	)
	for slot := 0; slot < hb.SlotCount(); slot++ {
		for _, id := range hb.slots[c][slot] {
			if cur == nil {
				if next >= len(groups) {
					row.Extras.Positions = append(row.Extras.Positions, id)
					continue
				}
				cur = &Crate{
					Caliber:   c,
					RackCount: groups[next],
					StartSlot: slot,
					Positions: make([]int, 0, RackSize*groups[next]),
				}
				next++
			}
			cur.Positions = append(cur.Positions, id)
			if len(cur.Positions) == RackSize*cur.RackCount {
				cur.EndSlot = slot
				row.Crates = append(row.Crates, *cur)
				cur = nil
			}
		}
	}

	if err := row.verify(); err != nil {
		return Row{}, errors.Wrap(errors.ErrCodeInternal, err, "half-board +%d caliber %d", hb.Offset, int(c))
	}
	return row, nil
}

// verify checks that every gun landed in exactly one crate or in extras.
func (r Row) verify() error {
	packed, racks := 0, 0
	for _, cr := range r.Crates {
		if len(cr.Positions) != RackSize*cr.RackCount {
			return fmt.Errorf("crate of %d racks holds %d positions", cr.RackCount, len(cr.Positions))
		}
		packed += len(cr.Positions)
		racks += cr.RackCount
	}
	if packed+len(r.Extras.Positions) != r.Total {
		return fmt.Errorf("packed %d + extras %d != total %d", packed, len(r.Extras.Positions), r.Total)
	}
	if racks != r.FullRacks {
		return fmt.Errorf("crates hold %d racks, want %d", racks, r.FullRacks)
	}
	return nil
}
