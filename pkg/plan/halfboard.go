package plan

import "sort"

// HalfBoard aggregates the positions of one half-board: Offset+1 through
// Offset+capacity. For each caliber it keeps one list of position ids per
// slot, with an id repeated once per gun.
type HalfBoard struct {
	Offset int

	capacity int
	nslots   int
	slots    map[Caliber][][]int
}

func newHalfBoard(offset, capacity, nslots int) *HalfBoard {
	return &HalfBoard{
		Offset:   offset,
		capacity: capacity,
		nslots:   nslots,
		slots:    make(map[Caliber][][]int),
	}
}

// TopPosition is the highest position id that belongs to this half-board.
func (h *HalfBoard) TopPosition() int { return h.Offset + h.capacity }

// Capacity is the number of positions in the half-board.
func (h *HalfBoard) Capacity() int { return h.capacity }

// SlotCount is the number of slots per caliber.
func (h *HalfBoard) SlotCount() int { return h.nslots }

// SlotOf returns the slot index of a position id.
func (h *HalfBoard) SlotOf(id int) int { return (id - 1) % h.nslots }

func (h *HalfBoard) add(p Position) {
	lists, ok := h.slots[p.Caliber]
	if !ok {
		lists = make([][]int, h.nslots)
		h.slots[p.Caliber] = lists
	}
	slot := h.SlotOf(p.ID)
	for i := 0; i < p.Quantity; i++ {
		lists[slot] = append(lists[slot], p.ID)
	}
}

// Has reports whether any record of caliber c landed on this half-board,
// including records with zero quantity.
func (h *HalfBoard) Has(c Caliber) bool {
	_, ok := h.slots[c]
	return ok
}

// Calibers returns the calibers present, largest code first.
func (h *HalfBoard) Calibers() []Caliber {
	out := make([]Caliber, 0, len(h.slots))
	for c := range h.slots {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Slot returns a copy of the position ids in slot i for caliber c.
func (h *HalfBoard) Slot(c Caliber, i int) []int {
	lists := h.slots[c]
	if lists == nil || i < 0 || i >= len(lists) {
		return nil
	}
	return append([]int(nil), lists[i]...)
}

// Counts returns the number of guns of caliber c in each slot.
func (h *HalfBoard) Counts(c Caliber) []int {
	counts := make([]int, h.nslots)
	for i, l := range h.slots[c] {
		counts[i] = len(l)
	}
	return counts
}

// Total returns the number of guns of caliber c on the half-board.
func (h *HalfBoard) Total(c Caliber) int {
	n := 0
	for _, l := range h.slots[c] {
		n += len(l)
	}
	return n
}

// Flatten returns the position ids of caliber c in slot order, and within
// a slot in insertion order.
func (h *HalfBoard) Flatten(c Caliber) []int {
	out := make([]int, 0, h.Total(c))
	for _, l := range h.slots[c] {
		out = append(out, l...)
	}
	return out
}
