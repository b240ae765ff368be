// Package config holds the tourlen command configuration and its YAML loader.
//
// A configuration file mirrors the command-line flags:
//
//	input: points.txt
//	format: text        # text | geojson
//	sort: false
//	algorithm: both     # exact | heuristic | both
//	exact:
//	  max-points: 20
//	  timeout: 30s
//	heuristic:
//	  strategy: buckets # buckets | rtree
//	  tour-out: tour.geojson
//	log:
//	  level: info       # debug | info | warn | error
//
// Flags given on the command line override values from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/tourlen/heldkarp"
	"github.com/katalvlaran/tourlen/nearest"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Algorithm names accepted by Config.Algorithm.
const (
	AlgoExact     = "exact"
	AlgoHeuristic = "heuristic"
	AlgoBoth      = "both"
)

// Input formats accepted by Config.Format.
const (
	FormatText    = "text"
	FormatGeoJSON = "geojson"
)

// Config is the full command configuration.
type Config struct {
	Input     string    `yaml:"input"`
	Format    string    `yaml:"format"`
	Sort      bool      `yaml:"sort"`
	Algorithm string    `yaml:"algorithm"`
	Exact     Exact     `yaml:"exact"`
	Heuristic Heuristic `yaml:"heuristic"`
	Log       Log       `yaml:"log"`
}

// Exact configures the Held–Karp solver.
type Exact struct {
	MaxPoints int           `yaml:"max-points"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Heuristic configures the nearest-neighbour solver.
type Heuristic struct {
	Strategy string `yaml:"strategy"`
	TourOut  string `yaml:"tour-out"`
}

// Log configures the command logger.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:    FormatText,
		Algorithm: AlgoBoth,
		Exact:     Exact{MaxPoints: heldkarp.DefaultMaxPoints},
		Heuristic: Heuristic{Strategy: nearest.ScanBuckets.String()},
		Log:       Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every enumerated and numeric field.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatGeoJSON:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	switch c.Algorithm {
	case AlgoExact, AlgoHeuristic, AlgoBoth:
	default:
		return fmt.Errorf("%w: algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	if c.Exact.MaxPoints < 2 || c.Exact.MaxPoints > heldkarp.HardMaxPoints {
		return fmt.Errorf("%w: exact.max-points %d not in [2, %d]", ErrInvalidConfig, c.Exact.MaxPoints, heldkarp.HardMaxPoints)
	}
	if c.Exact.Timeout < 0 {
		return fmt.Errorf("%w: exact.timeout %v is negative", ErrInvalidConfig, c.Exact.Timeout)
	}
	if _, err := nearest.ParseStrategy(c.Heuristic.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps Level to a slog.Level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, l.Level)
	}

	return lvl, nil
}
