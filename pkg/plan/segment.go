package plan

import (
	"github.com/pyrolayout/boardplan/pkg/errors"
)

// Segmenter groups an ascending position stream into half-boards.
type Segmenter struct {
	model  BoardModel
	boards []*HalfBoard
	cur    *HalfBoard
	n      int // records consumed, for diagnostics
}

// NewSegmenter returns a Segmenter for the given board model.
func NewSegmenter(m BoardModel) *Segmenter {
	return &Segmenter{model: m}
}

// Add consumes one position. A new half-board opens when the id exceeds the
// open half-board's top position. An id that maps to an earlier half-board
// than the open one fails with BOUNDARY_VIOLATION.
func (s *Segmenter) Add(p Position) error {
	s.n++
	if err := errors.ValidatePositionID(p.ID); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "record %d (%s): %s", s.n, p, errors.UserMessage(err))
	}
	if err := errors.ValidateQuantity(p.Quantity); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "record %d (%s): %s", s.n, p, errors.UserMessage(err))
	}
	if !p.Caliber.Known() {
		return errors.New(errors.ErrCodeInvalidInput, "record %d (%s): unknown caliber", s.n, p)
	}

	capacity := s.model.HalfCapacity()
	offset := ((p.ID - 1) / capacity) * capacity

	if s.cur == nil || p.ID > s.cur.TopPosition() {
		s.cur = newHalfBoard(offset, capacity, s.model.Slots())
		s.boards = append(s.boards, s.cur)
	} else if offset != s.cur.Offset {
		return errors.New(errors.ErrCodeBoundaryViolation,
			"record %d (%s): position %d belongs before half-board +%d (positions %d-%d); input must be sorted by PIN",
			s.n, p, p.ID, s.cur.Offset, s.cur.Offset+1, s.cur.TopPosition())
	}

	s.cur.add(p)
	return nil
}

// Boards returns the half-boards built so far, in input order.
func (s *Segmenter) Boards() []*HalfBoard {
	return append([]*HalfBoard(nil), s.boards...)
}

// Segment runs a Segmenter over positions.
func Segment(m BoardModel, positions []Position) ([]*HalfBoard, error) {
	s := NewSegmenter(m)
	for _, p := range positions {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}
	return s.Boards(), nil
}
