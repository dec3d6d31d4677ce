package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/pyrolayout/boardplan/pkg/io"
	"github.com/pyrolayout/boardplan/pkg/pipeline"
)

// planOpts holds the command-line flags of the root command.
type planOpts struct {
	phased     bool   // flip the caliber row order of the first half-board
	license    bool   // print the license and exit
	formats    string // output formats, comma-separated
	outputDir  string // artifact directory
	model      string // board model name
	configPath string // config file path
}

// runPlan reads input, builds the plan and writes the artifacts. Nothing is
// written unless every stage succeeded.
func (c *CLI) runPlan(cmd *cobra.Command, input string, opts *planOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(logger, opts.configPath)
	if err != nil {
		return err
	}
	popts, err := cfg.pipelineOptions(cmd.Flags(), opts)
	if err != nil {
		return err
	}
	popts.Logger = logger
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner()
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Reading "+input)
	spin.Start()
	positions, err := pkgio.ImportFile(input)
	spin.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Read %d records from %s", len(positions), input))

	result, err := runner.Execute(ctx, positions, popts)
	if err != nil {
		return err
	}
	if result.Stats.HalfBoards == 0 {
		printWarning("%s holds no positions", input)
	}

	paths, err := pipeline.WriteArtifacts(popts.OutputDir, result)
	if err != nil {
		return err
	}

	printPlanSummary(result, popts.Labels)
	printSuccess("Wrote %d file(s)", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}
