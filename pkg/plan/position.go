package plan

import "fmt"

// Position is one input record: Quantity guns of Caliber fire from the
// position with the given ID. Positions are never modified after reading.
type Position struct {
	ID       int
	Caliber  Caliber
	Quantity int
}

// String formats the record as "PIN=<id> CAL=<cal> QTY=<qty>".
func (p Position) String() string {
	return fmt.Sprintf("PIN=%d CAL=%d QTY=%d", p.ID, int(p.Caliber), p.Quantity)
}
