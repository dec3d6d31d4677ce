// Package cli implements the boardplan command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pyrolayout/boardplan/pkg/buildinfo"
	bperrors "github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and file names.
	appName = "boardplan"

	// defaultConfigFile is read from the working directory when present.
	defaultConfigFile = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Exit codes returned by the boardplan binary.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitMissingColumn = 2
	ExitInterrupted   = 130 // Standard shell convention for SIGINT
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself plans one input file.
func (c *CLI) RootCommand() *cobra.Command {
	var opts planOpts

	root := &cobra.Command{
		Use:   "boardplan [flags] <input>",
		Short: "Boardplan lays out firing boards and packs guns into crates",
		Long: `Boardplan reads a cue spreadsheet of firing positions (PIN, CAL, QTY) and
writes a workbook with the per-caliber counts of every half-board and the
packing of those positions into crates of 5-gun racks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.license {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.license {
				return printLicense(cmd.OutOrStdout())
			}
			return c.runPlan(cmd, args[0], &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().BoolVarP(&opts.phased, "phased", "p", false, "start the first half-board with the flipped caliber row order")
	root.Flags().BoolVar(&opts.license, "license", false, "print the license and exit")
	root.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): xlsx (default), json (comma-separated)")
	root.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory to write artifacts to (default \".\")")
	root.Flags().StringVar(&opts.model, "model", "", "board model (default \"kim\")")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default \"boardplan.toml\" if present)")

	// Register all subcommands
	root.AddCommand(c.serveCommand(&opts.configPath))
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields nil so config and pipeline defaults apply.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case bperrors.Is(err, bperrors.ErrCodeMissingColumn):
		return ExitMissingColumn
	}
	return ExitFailure
}
