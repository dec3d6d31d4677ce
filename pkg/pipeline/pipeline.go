// Package pipeline provides the planning pipeline shared by the CLI and the
// HTTP API.
//
// This package implements the complete segment → group → render pipeline.
// Both entry points go through [Runner.Execute], so a plan served over HTTP
// is byte-identical to the file the CLI writes for the same input.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Segment: split the position records into half-boards
//  2. Group: pack every caliber row of every half-board into crates
//  3. Render: draw the board and crate-layout sheets and encode the
//     requested formats (xlsx, json)
//
// Every stage completes for the whole input before the next one starts. Any
// error aborts the run and no artifact is produced; [WriteArtifacts] only
// touches the filesystem once all artifacts are rendered.
//
// # Usage
//
//	runner, err := pipeline.NewRunner(logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := pipeline.Options{Phased: true, Formats: []string{"xlsx"}}
//	result, err := runner.Execute(ctx, positions, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := pipeline.WriteArtifacts(".", result)
package pipeline

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultOutputDir is where the CLI writes artifacts.
	DefaultOutputDir = "."

	// OutputStem is the base name of every artifact.
	OutputStem = "fireworks_boards"

	// flippedSuffix marks artifacts rendered with the flipped initial phase.
	flippedSuffix = "_flipped"
)

// Format constants for output formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatXLSX: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a planning run.
type Options struct {
	// Phased starts the first half-board with the flipped row order.
	Phased bool `json:"phased,omitempty"`

	// Formats lists the artifacts to render. Defaults to xlsx.
	Formats []string `json:"formats,omitempty"`

	// Model names the board model. Defaults to plan.DefaultModel.
	Model string `json:"model,omitempty"`

	// Labels overrides caliber display names.
	Labels plan.Labels `json:"labels,omitempty"`

	// OutputDir is where WriteArtifacts puts files (CLI only).
	OutputDir string `json:"output_dir,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the packing plan of every half-board.
	Plan *plan.Plan

	// Phase is the row order of the first half-board.
	Phase plan.Phase

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records     int
	HalfBoards  int
	Crates      int
	SegmentTime time.Duration
	GroupTime   time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: xlsx, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := plan.LookupModel(o.Model); err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(o.OutputDir); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills in unset fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatXLSX}
	}
	o.Formats = dedupe(o.Formats)
	if o.Model == "" {
		o.Model = plan.DefaultModel
	}
	o.Labels = o.Labels.Merge()
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// InitialPhase returns the phase of the first half-board.
func (o *Options) InitialPhase() plan.Phase {
	return plan.InitialPhase(o.Phased)
}

// OutputName returns the artifact file name for a format.
//
//	OutputName("xlsx", false) // fireworks_boards.xlsx
//	OutputName("xlsx", true)  // fireworks_boards_flipped.xlsx
func OutputName(format string, phased bool) string {
	stem := OutputStem
	if phased {
		stem += flippedSuffix
	}
	return fmt.Sprintf("%s.%s", stem, format)
}

func dedupe(formats []string) []string {
	seen := make(map[string]bool, len(formats))
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// sortedFormats returns the artifact formats in a fixed order.
func sortedFormats(artifacts map[string][]byte) []string {
	out := make([]string, 0, len(artifacts))
	for f := range artifacts {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
