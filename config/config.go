// SPDX-License-Identifier: MIT

// Package config loads run settings for the extraction pipeline from a YAML
// file, an optional .env file and SIGNEDGE_* environment variables, in that
// order of increasing precedence. Environment variables are read with
// envconfig; their names are the YAML keys upper-cased under SIGNEDGE_.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/signedge/degree"
	"github.com/katalvlaran/signedge/features"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mode selects how candidate edges are enumerated.
type Mode string

const (
	// ModeIntra enumerates edges inside each degree bucket.
	ModeIntra Mode = "intra"
	// ModeInter enumerates edges between different buckets.
	ModeInter Mode = "inter"
)

// Defaults.
const (
	DefaultOutputDir         = "out"
	DefaultSampleLimit       = 1000
	DefaultMaxPathLength     = 4
	DefaultSentinel          = 1000.0
	DefaultAdaptiveMinBucket = 50
)

// Environment variable names. EnvPrefix plus the upper-cased YAML key.
const (
	EnvPrefix            = "SIGNEDGE"
	EnvInput             = "SIGNEDGE_INPUT"
	EnvOutputDir         = "SIGNEDGE_OUTPUT_DIR"
	EnvMode              = "SIGNEDGE_MODE"
	EnvAdaptiveMinBucket = "SIGNEDGE_ADAPTIVE_MIN_BUCKET"
	EnvSampleLimit       = "SIGNEDGE_PER_CLASS_SAMPLE_LIMIT"
	EnvMaxPathLength     = "SIGNEDGE_MAX_PATH_LENGTH"
	EnvMaxShortestPaths  = "SIGNEDGE_MAX_SHORTEST_PATHS"
	EnvSentinel          = "SIGNEDGE_INVALID_SENTINEL"
)

// Config is the full set of run settings.
type Config struct {
	Input     string `yaml:"input" split_words:"true"`
	OutputDir string `yaml:"output_dir" split_words:"true"`
	Mode      Mode   `yaml:"mode" split_words:"true"`

	// DegreeRanges holds [lo, hi] pairs. When empty, ranges are derived
	// from the graph with AdaptiveMinBucket.
	DegreeRanges      [][]int `yaml:"degree_ranges" ignored:"true"`
	AdaptiveMinBucket int     `yaml:"adaptive_min_bucket" split_words:"true"`

	PerClassSampleLimit int     `yaml:"per_class_sample_limit" split_words:"true"`
	MaxPathLength       int     `yaml:"max_path_length" split_words:"true"`
	MaxShortestPaths    int     `yaml:"max_shortest_paths" split_words:"true"`
	InvalidSentinel     float64 `yaml:"invalid_sentinel" split_words:"true"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		OutputDir:           DefaultOutputDir,
		Mode:                ModeIntra,
		AdaptiveMinBucket:   DefaultAdaptiveMinBucket,
		PerClassSampleLimit: DefaultSampleLimit,
		MaxPathLength:       DefaultMaxPathLength,
		InvalidSentinel:     DefaultSentinel,
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "error reading config file")
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.Wrapf(err, "error parsing YAML %s", path)
	}

	return cfg, nil
}

// LoadDotEnv loads the given .env files (".env" if none) into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return pkgerrors.Wrap(err, "error loading .env file")
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the YAML file
// at path (if non-empty), then .env and SIGNEDGE_* variables.
// Command-line overrides are applied by the caller before Validate.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from SIGNEDGE_* environment variables. Unset
// variables leave the field untouched.
func (c *Config) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return pkgerrors.Wrap(err, "error processing environment configuration")
	}
	return nil
}

// Ranges returns the configured degree ranges, or nil when none are set.
func (c *Config) Ranges() (degree.Ranges, error) {
	if len(c.DegreeRanges) == 0 {
		return nil, nil
	}
	pairs := make([][2]int, len(c.DegreeRanges))
	for i, p := range c.DegreeRanges {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: degree_ranges[%d] has %d values, want 2", ErrInvalidConfig, i, len(p))
		}
		pairs[i] = [2]int{p[0], p[1]}
	}
	rs, err := degree.FromPairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return rs, nil
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input is required", ErrInvalidConfig)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir is required", ErrInvalidConfig)
	case c.Mode != ModeIntra && c.Mode != ModeInter:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	case c.MaxPathLength < 0:
		return fmt.Errorf("%w: max_path_length %d < 0", ErrInvalidConfig, c.MaxPathLength)
	case c.MaxShortestPaths < 0:
		return fmt.Errorf("%w: max_shortest_paths %d < 0", ErrInvalidConfig, c.MaxShortestPaths)
	case c.AdaptiveMinBucket < 0:
		return fmt.Errorf("%w: adaptive_min_bucket %d < 0", ErrInvalidConfig, c.AdaptiveMinBucket)
	case !features.ValidSentinel(c.InvalidSentinel):
		return fmt.Errorf("%w: invalid_sentinel %g lies inside [%g, %g]",
			ErrInvalidConfig, c.InvalidSentinel, features.FeatureMin, features.FeatureMax)
	}
	_, err := c.Ranges()
	return err
}
