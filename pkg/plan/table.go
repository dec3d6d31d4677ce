package plan

import (
	"fmt"
	"sort"
)

// RackSize is the number of same-caliber positions in one rack.
const RackSize = 5

// rackGroups maps a number of full racks to the racks per crate, in fill
// order. No crate holds more than four racks.
var rackGroups = map[int][]int{
	1:  {1},
	2:  {2},
	3:  {3},
	4:  {4},
	5:  {2, 3},
	6:  {3, 3},
	7:  {3, 4},
	8:  {4, 4},
	9:  {3, 3, 3},
	10: {3, 4, 3},
	11: {3, 4, 4},
	12: {4, 4, 4},
}

// CrateGroups returns the per-crate rack counts for fullRacks full racks.
// The second result is false when the table has no entry.
func CrateGroups(fullRacks int) ([]int, bool) {
	g, ok := rackGroups[fullRacks]
	if !ok {
		return nil, false
	}
	return append([]int(nil), g...), true
}

// MaxFullRacks is the largest full-rack count the table covers.
func MaxFullRacks() int {
	top := 0
	for n := range rackGroups {
		if n > top {
			top = n
		}
	}
	return top
}

// ValidateTable checks that the table covers 1..MaxFullRacks without gaps
// and that every entry's rack counts sum to its key.
func ValidateTable() error {
	keys := make([]int, 0, len(rackGroups))
	for n := range rackGroups {
		keys = append(keys, n)
	}
	sort.Ints(keys)

	for i, n := range keys {
		if n != i+1 {
			return fmt.Errorf("rack grouping table: missing entry for %d full racks", i+1)
		}
		sum := 0
		for _, g := range rackGroups[n] {
			if g <= 0 {
				return fmt.Errorf("rack grouping table: entry %d has non-positive crate size %d", n, g)
			}
			sum += g
		}
		if sum != n {
			return fmt.Errorf("rack grouping table: entry %d sums to %d", n, sum)
		}
	}
	return nil
}
