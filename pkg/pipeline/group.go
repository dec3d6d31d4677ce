package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pyrolayout/boardplan/pkg/observability"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// Group packs every caliber row of every half-board into crates. It fails
// on the first row without a rack grouping and returns no partial plan.
func (r *Runner) Group(ctx context.Context, m plan.BoardModel, boards []*plan.HalfBoard) (p *plan.Plan, err error) {
	hooks := observability.Pipeline()
	hooks.OnGroupStart(ctx, len(boards))
	start := time.Now()
	crates := 0
	defer func() {
		hooks.OnGroupComplete(ctx, crates, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &plan.Plan{Model: m, Boards: make([]plan.BoardPlan, 0, len(boards))}
	n := 0
	for _, hb := range boards {
		bp, err := plan.GroupBoard(hb)
		if err != nil {
			return nil, err
		}
		for _, row := range bp.Rows {
			n++
			crates += len(row.Crates)
			r.Logger.Debug(fmt.Sprintf("row %d: %d full racks, %d extra", n, row.FullRacks, len(row.Extras.Positions)),
				"board", hb.Offset,
				"caliber", int(row.Caliber))
		}
		out.Boards = append(out.Boards, bp)
	}
	return out, nil
}
