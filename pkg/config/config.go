package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	log "github.com/tenantsim/simplot/pkg/logging"
	"gopkg.in/yaml.v3"
)

// Defaults preserve the behavior of the simulator's original plotting
// script: running simplot with no arguments in a directory holding
// samples.data renders every chart.
const (
	DefaultDataFile     = "samples.data"
	DefaultDistribution = "Zipf"
	DefaultOutputDir    = "."
	DefaultFormat       = "svg"
	DefaultWidth        = 1024
	DefaultHeight       = 768
)

// Config describes one rendering run
type Config struct {
	DataFile     string `yaml:"datafile,omitempty"`
	Distribution string `yaml:"distribution,omitempty"`
	OutputDir    string `yaml:"outputdir,omitempty"`
	Format       string `yaml:"format,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Height       int    `yaml:"height,omitempty"`
}

// Image formats we support. svg is the vector format suitable for print.
const validFormats = "svg|png"

var formatEval = regexp.MustCompile("^(?i)(" + validFormats + ")$")

// Validate checks the configuration and returns a descriptive error for
// the first invalid field.
func Validate(cfg Config) error {
	if len(cfg.DataFile) == 0 {
		return fmt.Errorf("datafile must not be empty")
	}
	if len(cfg.Distribution) == 0 {
		return fmt.Errorf("distribution must not be empty")
	}
	if !formatEval.MatchString(cfg.Format) {
		return fmt.Errorf("unknown image format %q", cfg.Format)
	}
	if cfg.Width < 1 {
		return fmt.Errorf("width must be > 0")
	}
	if cfg.Height < 1 {
		return fmt.Errorf("height must be > 0")
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataFile:     DefaultDataFile,
		Distribution: DefaultDistribution,
		OutputDir:    DefaultOutputDir,
		Format:       DefaultFormat,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
	}
}

// Load will read in the simplot configuration file which overlays the
// built-in defaults. An empty fn returns the defaults untouched.
// Returns Config struct
func Load(fn string) (Config, error) {
	cfg := Default()
	if len(fn) == 0 {
		return cfg, nil
	}
	log.Infof("📒 Reading %s file. ", fn)
	buf, err := os.ReadFile(fn)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(buf, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("in file %q: %v", fn, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Ext returns the output file extension for the configured image format.
func (c Config) Ext() string {
	return strings.ToLower(c.Format)
}

// Show Display the run config
func Show(c Config) {
	log.Infof("🗒️  Rendering %s samples from %s as %s to %s ", c.Distribution, c.DataFile, c.Ext(), c.OutputDir)
}
