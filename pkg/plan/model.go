package plan

import (
	"sort"

	"github.com/pyrolayout/boardplan/pkg/errors"
)

// BoardModel describes a physical board type: how positions segment into
// half-boards and how a half-board's caliber rows are placed when rendered.
type BoardModel interface {
	// Name is the identifier used in options and config ("kim").
	Name() string
	// Title is the sheet title in the output workbook.
	Title() string
	// HalfCapacity is the number of positions in one half-board.
	HalfCapacity() int
	// Slots is the number of slot columns per half-board.
	Slots() int
	// RowShifts gives the row offset of the first, second, ... caliber row
	// rendered for a half-board. Its length bounds the calibers per board.
	RowShifts() []int
}

// DefaultModel is the board model used when none is configured.
const DefaultModel = "kim"

// KimBoard is the 100-position slave board, rendered as two 50-position
// halves with 25 slot columns each.
type KimBoard struct{}

func (KimBoard) Name() string      { return "kim" }
func (KimBoard) Title() string     { return "Kim Slave" }
func (KimBoard) HalfCapacity() int { return 50 }
func (KimBoard) Slots() int        { return 25 }
func (KimBoard) RowShifts() []int  { return []int{0, 3, 4} }

var models = map[string]BoardModel{
	KimBoard{}.Name(): KimBoard{},
}

// LookupModel returns the registered board model with the given name.
// An empty name selects [DefaultModel].
func LookupModel(name string) (BoardModel, error) {
	if name == "" {
		name = DefaultModel
	}
	m, ok := models[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidModel, "unknown board model %q (must be one of: %v)", name, ModelNames())
	}
	return m, nil
}

// ModelNames lists the registered board models.
func ModelNames() []string {
	names := make([]string, 0, len(models))
	for n := range models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Ensure KimBoard implements BoardModel.
var _ BoardModel = KimBoard{}
