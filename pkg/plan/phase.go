package plan

// Phase selects the caliber row order of a half-board.
type Phase int

// The two row orders. Flipped is used for the first half-board when the
// operator asks for the alternate layout.
const (
	PhaseNormal  Phase = 0
	PhaseFlipped Phase = 1
)

var phaseOrders = [2][]Caliber{
	{Caliber3in, Caliber4in, Caliber25in},
	{Caliber4in, Caliber3in, Caliber25in},
}

// InitialPhase returns the phase for the first half-board.
func InitialPhase(flipped bool) Phase {
	if flipped {
		return PhaseFlipped
	}
	return PhaseNormal
}

// Order returns the caliber row order for p.
func (p Phase) Order() []Caliber {
	return append([]Caliber(nil), phaseOrders[p.normalize()]...)
}

// Next returns the other phase.
func (p Phase) Next() Phase { return (p.normalize() + 1) % 2 }

// PhaseAt returns the phase used for half-board k of a run that started at
// initial. The phase depends only on k, not on which calibers a board holds.
func PhaseAt(initial Phase, k int) Phase {
	return Phase((int(initial.normalize()) + k) % 2)
}

func (p Phase) normalize() Phase {
	if p < 0 {
		p = -p
	}
	return p % 2
}
