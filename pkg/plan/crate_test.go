package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pyrolayout/boardplan/pkg/errors"
)

func repeat(id, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = id
	}
	return out
}

func concat(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func groupOne(t *testing.T, cal Caliber, positions ...Position) Row {
	t.Helper()
	boards, err := Segment(KimBoard{}, positions)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("len(boards) = %d, want 1", len(boards))
	}
	row, err := GroupCrates(boards[0], cal)
	if err != nil {
		t.Fatalf("GroupCrates() error = %v", err)
	}
	return row
}

func TestGroupCratesTwoRacks(t *testing.T) {
	row := groupOne(t, Caliber4in, pos(1, Caliber4in, 5), pos(2, Caliber4in, 5))

	want := Row{
		Caliber:   Caliber4in,
		Counts:    concat([]int{5, 5}, make([]int, 23)),
		Total:     10,
		FullRacks: 2,
		Crates: []Crate{{
			Caliber:   Caliber4in,
			Positions: concat(repeat(1, 5), repeat(2, 5)),
			RackCount: 2,
			StartSlot: 0,
			EndSlot:   1,
		}},
		Extras: Extras{Caliber: Caliber4in, Positions: []int{}},
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("GroupCrates() mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCratesOneRackWithExtras(t *testing.T) {
	row := groupOne(t, Caliber3in, pos(7, Caliber3in, 9))

	if row.FullRacks != 1 || row.Remainder != 4 {
		t.Errorf("full/remainder = %d/%d, want 1/4", row.FullRacks, row.Remainder)
	}
	if len(row.Crates) != 1 || len(row.Crates[0].Positions) != 5 {
		t.Fatalf("crates = %+v, want one crate of 5", row.Crates)
	}
	if diff := cmp.Diff(repeat(7, 4), row.Extras.Positions); diff != "" {
		t.Errorf("extras mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCratesTenRacks(t *testing.T) {
	var positions []Position
	for id := 1; id <= 10; id++ {
		positions = append(positions, pos(id, Caliber25in, 5))
	}
	positions = append(positions, pos(11, Caliber25in, 2))

	row := groupOne(t, Caliber25in, positions...)

	if row.Total != 52 || row.FullRacks != 10 || row.Remainder != 2 {
		t.Fatalf("total/full/remainder = %d/%d/%d, want 52/10/2", row.Total, row.FullRacks, row.Remainder)
	}
	var lens, racks []int
	for _, c := range row.Crates {
		lens = append(lens, len(c.Positions))
		racks = append(racks, c.RackCount)
	}
	if diff := cmp.Diff([]int{15, 20, 15}, lens); diff != "" {
		t.Errorf("crate lengths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 4, 3}, racks); diff != "" {
		t.Errorf("rack counts mismatch (-want +got):\n%s", diff)
	}

	slots := [][2]int{{0, 2}, {3, 6}, {7, 9}}
	for i, c := range row.Crates {
		if c.StartSlot != slots[i][0] || c.EndSlot != slots[i][1] {
			t.Errorf("crate %d slots = [%d,%d], want %v", i, c.StartSlot, c.EndSlot, slots[i])
		}
	}
	if diff := cmp.Diff([]int{11, 11}, row.Extras.Positions); diff != "" {
		t.Errorf("extras mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCratesSharedSlot(t *testing.T) {
	// 25 guns -> 5 racks -> crates of 2 and 3 racks. The second crate starts
	// in the slot the first one ended in.
	row := groupOne(t, Caliber4in, pos(1, Caliber4in, 12), pos(2, Caliber4in, 13))

	if len(row.Crates) != 2 {
		t.Fatalf("len(crates) = %d, want 2", len(row.Crates))
	}
	first, second := row.Crates[0], row.Crates[1]
	if first.StartSlot != 0 || first.EndSlot != 0 {
		t.Errorf("first crate slots = [%d,%d], want [0,0]", first.StartSlot, first.EndSlot)
	}
	if second.StartSlot != 0 || second.EndSlot != 1 {
		t.Errorf("second crate slots = [%d,%d], want [0,1]", second.StartSlot, second.EndSlot)
	}
	if diff := cmp.Diff(concat(repeat(1, 2), repeat(2, 13)), second.Positions); diff != "" {
		t.Errorf("second crate mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCratesZeroRacks(t *testing.T) {
	row := groupOne(t, Caliber4in, pos(30, Caliber4in, 1), pos(4, Caliber4in, 2))

	if len(row.Crates) != 0 {
		t.Errorf("len(crates) = %d, want 0", len(row.Crates))
	}
	// Slot order: 4 is slot 3, 30 is slot 4.
	if diff := cmp.Diff([]int{4, 4, 30}, row.Extras.Positions); diff != "" {
		t.Errorf("extras mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupCratesUnsupportedRackCount(t *testing.T) {
	var positions []Position
	for id := 1; id <= 13; id++ {
		positions = append(positions, pos(id, Caliber3in, 5))
	}
	boards, err := Segment(KimBoard{}, positions)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}

	_, err = GroupCrates(boards[0], Caliber3in)
	if !errors.Is(err, errors.ErrCodeUnsupportedRackCount) {
		t.Errorf("GroupCrates() error = %v, want %s", err, errors.ErrCodeUnsupportedRackCount)
	}
}

func TestGroupCratesConservation(t *testing.T) {
	// Spread every total from 0 to 64 guns over the 25 slots.
	for total := 0; total <= 64; total++ {
		var positions []Position
		left := total
		for id := 1; left > 0; id++ {
			qty := 1 + id%4
			if qty > left {
				qty = left
			}
			positions = append(positions, pos(id, Caliber4in, qty))
			left -= qty
		}
		if len(positions) == 0 {
			positions = append(positions, pos(1, Caliber4in, 0))
		}

		boards, err := Segment(KimBoard{}, positions)
		if err != nil {
			t.Fatalf("total %d: Segment() error = %v", total, err)
		}
		row, err := GroupCrates(boards[0], Caliber4in)
		if err != nil {
			t.Fatalf("total %d: GroupCrates() error = %v", total, err)
		}

		packed, racks := 0, 0
		for _, c := range row.Crates {
			if len(c.Positions) != RackSize*c.RackCount {
				t.Errorf("total %d: crate of %d racks has %d positions", total, c.RackCount, len(c.Positions))
			}
			packed += len(c.Positions)
			racks += c.RackCount
		}
		if packed+len(row.Extras.Positions) != total {
			t.Errorf("total %d: packed %d + extras %d", total, packed, len(row.Extras.Positions))
		}
		if racks != total/RackSize {
			t.Errorf("total %d: racks = %d, want %d", total, racks, total/RackSize)
		}
		if len(row.Extras.Positions) > 4 {
			t.Errorf("total %d: %d extras", total, len(row.Extras.Positions))
		}
		got := concat(positionsOf(row.Crates), row.Extras.Positions)
		if diff := cmp.Diff(boards[0].Flatten(Caliber4in), got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("total %d: fill order mismatch (-want +got):\n%s", total, diff)
		}
	}
}

func positionsOf(crates []Crate) []int {
	var out []int
	for _, c := range crates {
		out = append(out, c.Positions...)
	}
	return out
}

func TestCrateLane(t *testing.T) {
	c := Crate{RackCount: 3, Positions: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}}

	if diff := cmp.Diff([]int{1, 2, 3}, c.Lane(0)); diff != "" {
		t.Errorf("Lane(0) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{13, 14, 15}, c.Lane(4)); diff != "" {
		t.Errorf("Lane(4) mismatch (-want +got):\n%s", diff)
	}
	if c.Lane(5) != nil {
		t.Error("Lane(5) should be nil")
	}
}
