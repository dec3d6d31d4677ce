package plan

import (
	"fmt"
	"sort"

	"github.com/pyrolayout/boardplan/pkg/errors"
)

// Caliber is the size class of a device, identified by its CAL code.
type Caliber int

// Known calibers.
const (
	Caliber4in  Caliber = 101
	Caliber3in  Caliber = 76
	Caliber25in Caliber = 63
)

var knownCalibers = map[Caliber]bool{
	Caliber4in:  true,
	Caliber3in:  true,
	Caliber25in: true,
}

// DefaultLabels are the display names used on the board sheets.
var DefaultLabels = Labels{
	Caliber4in:  `4"`,
	Caliber3in:  `3"`,
	Caliber25in: `2.5"`,
}

// Known reports whether c is one of the calibers the board layout has rows for.
func (c Caliber) Known() bool { return knownCalibers[c] }

// String returns the CAL code.
func (c Caliber) String() string { return fmt.Sprintf("%d", int(c)) }

// ParseCaliber converts a CAL code to a Caliber, rejecting unknown codes.
func ParseCaliber(code int) (Caliber, error) {
	c := Caliber(code)
	if !c.Known() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "unknown caliber code %d (known: %v)", code, KnownCalibers())
	}
	return c, nil
}

// KnownCalibers returns the known calibers in descending size order.
func KnownCalibers() []Caliber {
	out := make([]Caliber, 0, len(knownCalibers))
	for c := range knownCalibers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Labels maps calibers to display names.
type Labels map[Caliber]string

// Label returns the display name for c. Missing entries fall back to
// [DefaultLabels], then to "cal(<code>)".
func (l Labels) Label(c Caliber) string {
	if s, ok := l[c]; ok && s != "" {
		return s
	}
	if s, ok := DefaultLabels[c]; ok {
		return s
	}
	return fmt.Sprintf("cal(%d)", int(c))
}

// Merge returns a copy of DefaultLabels overlaid with l.
func (l Labels) Merge() Labels {
	out := make(Labels, len(DefaultLabels)+len(l))
	for c, s := range DefaultLabels {
		out[c] = s
	}
	for c, s := range l {
		if s != "" {
			out[c] = s
		}
	}
	return out
}
