// SPDX-License-Identifier: MIT

// Package config loads filtering thresholds from YAML and turns them into
// filter options.
//
// Example file:
//
//	batch_capacity: 5000
//	prevalence_scope: per-batch
//	cells:
//	  min_genes: 200
//	  max_genes: 6000
//	genes:
//	  min_counts: 1
//	  max_counts: 1000
//	  min_cells: 3
//	  max_cells: 100000
//	log:
//	  level: info
//	  format: text
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scfilter/filter"
	"github.com/katalvlaran/scfilter/internal/logging"
	"github.com/katalvlaran/scfilter/matrix"
)

// ErrInvalidConfig is returned by Validate for any rejected setting.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// CellThresholds bound the genes detected per cell.
type CellThresholds struct {
	MinGenes int `yaml:"min_genes"`
	MaxGenes int `yaml:"max_genes"`
}

// GeneThresholds bound expression values and their prevalence.
type GeneThresholds struct {
	MinCounts float64 `yaml:"min_counts"`
	MaxCounts float64 `yaml:"max_counts"`
	MinCells  int     `yaml:"min_cells"`
	MaxCells  int     `yaml:"max_cells"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Config is the file-level configuration of a filtering run.
type Config struct {
	BatchCapacity   int            `yaml:"batch_capacity"`
	PrevalenceScope string         `yaml:"prevalence_scope"`
	Cells           CellThresholds `yaml:"cells"`
	Genes           GeneThresholds `yaml:"genes"`
	Log             LogConfig      `yaml:"log"`
}

// Default returns a permissive configuration: every cell and value passes.
func Default() Config {
	return Config{
		BatchCapacity:   filter.DefaultBatchCapacity,
		PrevalenceScope: filter.DefaultPrevalenceScope.String(),
		Cells:           CellThresholds{MinGenes: 0, MaxGenes: math.MaxInt},
		Genes: GeneThresholds{
			MinCounts: 0,
			MaxCounts: math.MaxFloat64,
			MinCells:  0,
			MaxCells:  math.MaxInt,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Parse decodes YAML on top of Default() and validates the result.
// Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(b)
}

// Validate checks every threshold pair and enumerated setting.
func (c Config) Validate() error {
	if c.BatchCapacity <= 0 {
		return fmt.Errorf("batch_capacity=%d: %w", c.BatchCapacity, ErrInvalidConfig)
	}
	if err := filter.ValidateCellBounds(c.Cells.MinGenes, c.Cells.MaxGenes); err != nil {
		return fmt.Errorf("cells: %v: %w", err, ErrInvalidConfig)
	}
	bounds := filter.GeneBounds{
		MinCounts: c.Genes.MinCounts,
		MaxCounts: c.Genes.MaxCounts,
		MinCells:  c.Genes.MinCells,
		MaxCells:  c.Genes.MaxCells,
	}
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("genes: %v: %w", err, ErrInvalidConfig)
	}
	if _, err := filter.ParsePrevalenceScope(c.PrevalenceScope); err != nil {
		return fmt.Errorf("prevalence_scope: %v: %w", err, ErrInvalidConfig)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	if f := c.Log.Format; f != "" && f != "text" && f != "json" {
		return fmt.Errorf("log.format=%q: %w", f, ErrInvalidConfig)
	}

	return nil
}

// Logger builds the slog logger described by c.Log.
func (c Config) Logger() (*slog.Logger, error) {
	lvl, err := c.Log.level()
	if err != nil {
		return nil, err
	}
	if c.Log.Format == "json" {
		return logging.NewJSON(lvl).Logger, nil
	}

	return logging.NewText(lvl).Logger, nil
}

// Options returns the filter options shared by both pipelines:
// batch capacity, prevalence scope and logger.
func (c Config) Options() ([]filter.Option, error) {
	scope, err := filter.ParsePrevalenceScope(c.PrevalenceScope)
	if err != nil {
		return nil, fmt.Errorf("prevalence_scope: %v: %w", err, ErrInvalidConfig)
	}
	l, err := c.Logger()
	if err != nil {
		return nil, err
	}

	return []filter.Option{
		filter.WithBatchCapacity(c.BatchCapacity),
		filter.WithPrevalenceScope(scope),
		filter.WithLogger(l),
	}, nil
}

// FilterCells runs filter.FilterCells with the configured cell thresholds.
// extra options are applied after the configured ones.
func (c Config) FilterCells(m *matrix.CSR, extra ...filter.Option) (*filter.CellResult, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return filter.FilterCells(m, c.Cells.MinGenes, c.Cells.MaxGenes, append(opts, extra...)...)
}

// FilterGenes runs filter.FilterGenes with the configured gene thresholds.
// extra options are applied after the configured ones.
func (c Config) FilterGenes(m *matrix.CSR, extra ...filter.Option) (*filter.GeneSegments, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	return filter.FilterGenes(m, c.Genes.MinCounts, c.Genes.MinCells, c.Genes.MaxCounts, c.Genes.MaxCells,
		append(opts, extra...)...)
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", l.Level, ErrInvalidConfig)
	}

	return lvl, nil
}
