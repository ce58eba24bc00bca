// Package config loads the netarea configuration file.
//
// A file only needs the keys it overrides; everything else keeps the
// values from Default. Unknown keys are an error so typos surface early.
//
//	engine:
//	  bound_limit: 1000
//	  max_points: 100000
//	  extrema_step: 0.0001
//	  continuity_step: 0.001
//	  seed: 0
//	  restriction: lexical
//	log:
//	  level: info
//	metrics:
//	  textfile: ""
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netarea/pipeline"
)

// validate is shared; validator caches struct metadata.
var validate = validator.New()

// Config is the root of the configuration file.
type Config struct {
	Engine  Engine  `yaml:"engine" json:"engine"`
	Log     Log     `yaml:"log" json:"log"`
	Metrics Metrics `yaml:"metrics" json:"metrics"`
}

// Engine holds the pipeline tunables.
type Engine struct {
	// BoundLimit is the symmetric limit on the integration bounds.
	BoundLimit float64 `yaml:"bound_limit" json:"bound_limit" validate:"gt=0"`

	// MaxPoints is the largest accepted sample / rectangle count.
	MaxPoints int `yaml:"max_points" json:"max_points" validate:"gte=1,lte=2147483647"`

	// ExtremaStep is the grid step of the min/max scan.
	ExtremaStep float64 `yaml:"extrema_step" json:"extrema_step" validate:"gt=0"`

	// ContinuityStep is the grid step of the validity scan.
	ContinuityStep float64 `yaml:"continuity_step" json:"continuity_step" validate:"gt=0"`

	// Seed drives Monte Carlo sampling; 0 selects the fixed default stream.
	Seed int64 `yaml:"seed" json:"seed"`

	// Restriction is "lexical" or "semantic".
	Restriction string `yaml:"restriction" json:"restriction" validate:"oneof=lexical semantic"`
}

// Log configures the CLI's slog handler.
type Log struct {
	Level string `yaml:"level" json:"level" validate:"oneof=debug info warn error"`
}

// Metrics configures Prometheus export.
type Metrics struct {
	// Textfile, when set, receives the registry in text exposition format on exit.
	Textfile string `yaml:"textfile" json:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: Engine{
			BoundLimit:     pipeline.DefaultBoundLimit,
			MaxPoints:      pipeline.DefaultMaxPoints,
			ExtremaStep:    pipeline.DefaultExtremaStep,
			ContinuityStep: pipeline.DefaultContinuityStep,
			Seed:           pipeline.DefaultSeed,
			Restriction:    pipeline.Lexical.String(),
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Empty input
// yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SlogLevel maps Log.Level to a slog.Level (unknown ⇒ Info).
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// PipelineOptions converts the engine section into pipeline options.
// The config must have passed Validate.
func (c Config) PipelineOptions() []pipeline.Option {
	mode, _ := pipeline.ParseRestriction(c.Engine.Restriction)

	return []pipeline.Option{
		pipeline.WithLimits(c.Engine.BoundLimit, c.Engine.MaxPoints),
		pipeline.WithSteps(c.Engine.ExtremaStep, c.Engine.ContinuityStep),
		pipeline.WithSeed(c.Engine.Seed),
		pipeline.WithRestriction(mode),
	}
}
