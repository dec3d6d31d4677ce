package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// Runner executes the planning pipeline.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner after checking the rack grouping table.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) (*Runner, error) {
	if err := plan.ValidateTable(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "rack grouping table")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}, nil
}

// Execute runs the complete segment → group → render pipeline.
func (r *Runner) Execute(ctx context.Context, positions []plan.Position, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	model, err := plan.LookupModel(opts.Model)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Phase:     opts.InitialPhase(),
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Records = len(positions)

	// Stage 1: Segment
	segmentStart := time.Now()
	boards, err := r.Segment(ctx, model, positions)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}
	result.Stats.SegmentTime = time.Since(segmentStart)
	result.Stats.HalfBoards = len(boards)

	r.Logger.Info("segmented positions",
		"records", len(positions),
		"boards", len(boards),
		"duration", result.Stats.SegmentTime)

	// Stage 2: Group
	groupStart := time.Now()
	p, err := r.Group(ctx, model, boards)
	if err != nil {
		return nil, fmt.Errorf("group: %w", err)
	}
	result.Plan = p
	result.Stats.GroupTime = time.Since(groupStart)
	result.Stats.Crates = countCrates(p)

	r.Logger.Info("grouped crates",
		"crates", result.Stats.Crates,
		"duration", result.Stats.GroupTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"phase", int(result.Phase),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func countCrates(p *plan.Plan) int {
	n := 0
	for _, b := range p.Boards {
		for _, row := range b.Rows {
			n += len(row.Crates)
		}
	}
	return n
}
