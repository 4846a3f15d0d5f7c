// =============================================================================
// Sales Analytics System - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration from a single
// YAML file. The configuration system is:
//   - Defaulted: every unset option gets a documented default
//   - Validated: the directory tree is checked (and created) on load
//
// =============================================================================

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the application configuration, loaded from config.yaml.
type Config struct {
	// InputFile is the pipe-delimited sales data file to analyze.
	// Default: "data/sales_data.txt"
	InputFile string `yaml:"input_file"`

	// OutputDir is the directory where generated reports are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where processed input files are moved
	// after a successful run.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// ReportNameFormat defines the base name of generated report files.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	// Default: "sales_report_{timestamp}"
	ReportNameFormat string `yaml:"report_name_format"`

	// EnrichedFileName is the name of the enriched pipe-delimited export
	// written to OutputDir.
	// Default: "enriched_sales_data.txt"
	EnrichedFileName string `yaml:"enriched_file_name"`

	// Analysis holds the aggregation parameters.
	Analysis AnalysisSettings `yaml:"analysis"`

	// Catalog holds the product catalog API settings.
	Catalog CatalogSettings `yaml:"catalog"`
}

// AnalysisSettings holds the aggregation parameters.
type AnalysisSettings struct {
	// TopProducts is the result size of the top-selling products list.
	// Default: 5
	TopProducts int `yaml:"top_products"`

	// LowQuantityThreshold is the strict upper bound on total quantity for
	// a product to count as low-performing.
	// Default: 10
	LowQuantityThreshold int `yaml:"low_quantity_threshold"`
}

// CatalogSettings holds the product catalog API settings.
type CatalogSettings struct {
	// Disabled turns catalog enrichment off entirely.
	Disabled bool `yaml:"disabled"`

	// BaseURL is the catalog API base URL (DummyJSON-compatible).
	// Default: "https://dummyjson.com"
	BaseURL string `yaml:"base_url"`

	// Limit is the maximum number of products fetched in one call.
	// Default: 100
	Limit int `yaml:"limit"`

	// TimeoutSeconds bounds the catalog request.
	// Default: 10
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, applies defaults, and validates it.
// A missing file is not an error: the defaults are used so the tool works
// out of the box.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets documented defaults for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = "data/sales_data.txt"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ReportNameFormat == "" {
		cfg.ReportNameFormat = "sales_report_{timestamp}"
	}
	if cfg.EnrichedFileName == "" {
		cfg.EnrichedFileName = "enriched_sales_data.txt"
	}
	if cfg.Analysis.TopProducts == 0 {
		cfg.Analysis.TopProducts = 5
	}
	if cfg.Analysis.LowQuantityThreshold == 0 {
		cfg.Analysis.LowQuantityThreshold = 10
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://dummyjson.com"
	}
	if cfg.Catalog.Limit == 0 {
		cfg.Catalog.Limit = 100
	}
	if cfg.Catalog.TimeoutSeconds == 0 {
		cfg.Catalog.TimeoutSeconds = 10
	}
}

// validate checks the configuration and creates the output directories.
func validate(cfg *Config) error {
	for _, dir := range []string{cfg.OutputDir, cfg.ArchiveDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	if cfg.Analysis.TopProducts < 0 {
		return fmt.Errorf("analysis.top_products must not be negative")
	}
	if cfg.Analysis.LowQuantityThreshold < 0 {
		return fmt.Errorf("analysis.low_quantity_threshold must not be negative")
	}

	return nil
}

// SlogLevel translates the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
