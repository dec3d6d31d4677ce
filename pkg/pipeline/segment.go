package pipeline

import (
	"context"
	"time"

	"github.com/pyrolayout/boardplan/pkg/observability"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// Segment splits positions into half-boards of the model.
func (r *Runner) Segment(ctx context.Context, m plan.BoardModel, positions []plan.Position) (boards []*plan.HalfBoard, err error) {
	hooks := observability.Pipeline()
	hooks.OnSegmentStart(ctx, len(positions))
	start := time.Now()
	defer func() {
		hooks.OnSegmentComplete(ctx, len(boards), time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return plan.Segment(m, positions)
}
