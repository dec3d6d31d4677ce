package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/pyrolayout/boardplan/pkg/errors"
	"github.com/pyrolayout/boardplan/pkg/pipeline"
	"github.com/pyrolayout/boardplan/pkg/plan"
)

// Config is the on-disk configuration (boardplan.toml):
//
//	output_dir = "plans"
//	phased = false
//	formats = ["xlsx", "json"]
//	model = "kim"
//
//	[calibers]
//	101 = "4in"
type Config struct {
	OutputDir string            `toml:"output_dir"`
	Phased    bool              `toml:"phased"`
	Formats   []string          `toml:"formats"`
	Model     string            `toml:"model"`
	Calibers  map[string]string `toml:"calibers"`
}

// loadConfig reads the config file at path. With an empty path the default
// file is read if it exists; a missing file is only an error when the path
// was given explicitly.
func loadConfig(logger *log.Logger, path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "config %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("ignoring unknown config keys", "file", path, "keys", strings.Join(keys, ", "))
	}
	logger.Debug("loaded config", "file", path)
	return cfg, nil
}

// labels converts the [calibers] table to caliber display names.
func (c Config) labels() (plan.Labels, error) {
	if len(c.Calibers) == 0 {
		return nil, nil
	}
	out := make(plan.Labels, len(c.Calibers))
	for key, name := range c.Calibers {
		code, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "config: caliber key %q is not a CAL code", key)
		}
		out[plan.Caliber(code)] = name
	}
	return out, nil
}

// pipelineOptions merges the config with command-line flags; flags that
// were set explicitly win.
func (c Config) pipelineOptions(flags *pflag.FlagSet, opts *planOpts) (pipeline.Options, error) {
	labels, err := c.labels()
	if err != nil {
		return pipeline.Options{}, err
	}

	out := pipeline.Options{
		Phased:    c.Phased,
		Formats:   c.Formats,
		Model:     c.Model,
		Labels:    labels,
		OutputDir: c.OutputDir,
	}
	if flags.Changed("phased") {
		out.Phased = opts.phased
	}
	if flags.Changed("format") {
		out.Formats = parseFormats(opts.formats)
	}
	if flags.Changed("model") {
		out.Model = opts.model
	}
	if flags.Changed("output-dir") {
		out.OutputDir = opts.outputDir
	}
	return out, nil
}
