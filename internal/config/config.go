// Package config loads the run configuration for the spanforest CLI from
// YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanforest/kruskal"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid configuration")

// Mode names.
const (
	ModeBounded = "bounded"
	ModeConnect = "connect"
)

// Config is the top-level configuration, usually read from spanforest.yaml.
type Config struct {
	// Mode is the default run mode: "bounded" or "connect".
	Mode string `yaml:"mode"`
	// Cutoff is the number of edges a bounded run processes.
	Cutoff int `yaml:"cutoff"`
	// Top is how many of the largest clusters a bounded run multiplies.
	Top int `yaml:"top"`
	// Strategy is "sorted" or "lazy".
	Strategy string `yaml:"strategy"`
	// Combiner names the connect-mode combiner, e.g. "product-x".
	Combiner string `yaml:"combiner"`
	// Logging configures the logger.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:     ModeBounded,
		Cutoff:   kruskal.DefaultCutoff,
		Top:      kruskal.DefaultTop,
		Strategy: kruskal.StrategySorted.String(),
		Combiner: "product-x",
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Parse decodes YAML over the defaults and validates the result. Keys that
// are absent keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeBounded, ModeConnect:
	default:
		return fmt.Errorf("mode %q (allowed: %s, %s): %w", c.Mode, ModeBounded, ModeConnect, ErrInvalid)
	}
	if c.Cutoff < 0 {
		return fmt.Errorf("cutoff %d must be >= 0: %w", c.Cutoff, ErrInvalid)
	}
	if c.Top < 1 {
		return fmt.Errorf("top %d must be >= 1: %w", c.Top, ErrInvalid)
	}
	if _, err := kruskal.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("strategy %q (allowed: sorted, lazy): %w", c.Strategy, ErrInvalid)
	}
	if _, err := kruskal.CombinerByName(c.Combiner); err != nil {
		return fmt.Errorf("combiner %q: %w", c.Combiner, ErrInvalid)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level %q (allowed: debug, info, warn, error): %w", c.Logging.Level, ErrInvalid)
	}

	return nil
}

// Options converts the kruskal-related fields into run options.
func (c Config) Options() ([]kruskal.Option, error) {
	s, err := kruskal.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}

	return []kruskal.Option{
		kruskal.WithCutoff(c.Cutoff),
		kruskal.WithTop(c.Top),
		kruskal.WithStrategy(s),
	}, nil
}
