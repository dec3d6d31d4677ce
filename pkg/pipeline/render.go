package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pyrolayout/boardplan/pkg/layout"
	"github.com/pyrolayout/boardplan/pkg/observability"
	"github.com/pyrolayout/boardplan/pkg/plan"
	"github.com/pyrolayout/boardplan/pkg/sink"
)

// Render generates output artifacts in the requested formats.
func (r *Runner) Render(ctx context.Context, p *plan.Plan, opts Options) (artifacts map[string][]byte, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Render(p, opts)
}

// Render draws the plan and encodes it in every format of opts.
func Render(p *plan.Plan, opts Options) (map[string][]byte, error) {
	phase := opts.InitialPhase()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatXLSX:
			rd := layout.Renderer{Model: p.Model, Labels: opts.Labels}
			data, err = sink.RenderXLSX(rd.Render(p, phase))
		case FormatJSON:
			data, err = sink.RenderJSON(p, sink.WithJSONPhase(phase), sink.WithJSONLabels(opts.Labels))
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
