// Package config loads engine settings from YAML, environment overrides and
// built-in defaults, in increasing order of precedence: defaults, file, env.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphanalytics/pkg/algorithms"
	"github.com/dd0wney/cluso-graphanalytics/pkg/parallel"
	"github.com/dd0wney/cluso-graphanalytics/pkg/validation"
)

// Environment variables read by Load.
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvWorkers           = "GRAPH_ANALYTICS_WORKERS"
	EnvParallelThreshold = "GRAPH_ANALYTICS_PARALLEL_THRESHOLD"
)

// numCPU is replaced in tests.
var numCPU = runtime.NumCPU

// ErrInvalidConfig wraps every load and validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full engine configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// LoggingConfig selects the log backend and level.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	// Format is "json" for the built-in line logger or "zap".
	Format string `yaml:"format" validate:"oneof=json zap"`
}

// AnalysisConfig holds algorithm defaults and the parallel sweep policy.
type AnalysisConfig struct {
	Workers                int     `yaml:"workers" validate:"gte=1,lte=1024"`
	ParallelThreshold      int     `yaml:"parallel_threshold" validate:"gte=1"`
	Tolerance              float64 `yaml:"tolerance" validate:"gt=0,finite"`
	MaxIterations          int     `yaml:"max_iterations" validate:"gte=1"`
	DefaultDamping         float64 `yaml:"default_damping" validate:"gt=0,lt=1"`
	DefaultKatzAlpha       float64 `yaml:"default_katz_alpha" validate:"gt=0,finite"`
	LabelPropagationRounds int     `yaml:"label_propagation_rounds" validate:"gte=1"`
}

// MetricsConfig toggles Prometheus collection.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Analysis: AnalysisConfig{
			Workers:                min(numCPU(), parallel.MaxWorkers),
			ParallelThreshold:      algorithms.DefaultParallelThreshold,
			Tolerance:              algorithms.DefaultTolerance,
			MaxIterations:          algorithms.DefaultMaxIterations,
			DefaultDamping:         algorithms.DefaultDamping,
			DefaultKatzAlpha:       algorithms.DefaultKatzAlpha,
			LabelPropagationRounds: algorithms.DefaultLabelPropRounds,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Load reads path (skipped when empty) over the defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates without consulting the
// environment.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := decode(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	for _, o := range []struct {
		name string
		dst  *int
	}{
		{EnvWorkers, &c.Analysis.Workers},
		{EnvParallelThreshold, &c.Analysis.ParallelThreshold},
	} {
		v, ok := lookup(o.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, o.name, v)
		}
		*o.dst = n
	}
	return nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// AlgorithmOptions converts the analysis section into algorithm options.
func (a AnalysisConfig) AlgorithmOptions() []algorithms.Option {
	return []algorithms.Option{
		algorithms.WithWorkers(a.Workers),
		algorithms.WithParallelThreshold(a.ParallelThreshold),
		algorithms.WithTolerance(a.Tolerance),
		algorithms.WithMaxIterations(a.MaxIterations),
	}
}
