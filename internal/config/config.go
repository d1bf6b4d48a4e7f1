// Package config loads docsnap YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-docsnap/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidEngine  = errors.New("invalid render engine")
)

// Config holds optional overrides for snapshot runs. Zero values mean
// "use the built-in default"; CLI flags win over config values.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
	Render   RenderConfig   `yaml:"render"`
}

// DocumentConfig names the files the pipeline reads from the repository.
type DocumentConfig struct {
	File       string `yaml:"file"`       // Document name (default "resume.md")
	Stylesheet string `yaml:"stylesheet"` // Stylesheet name (default "style.css")
}

// OutputConfig defines artifact destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (default "temp")
}

// LogConfig defines snapshot log options.
type LogConfig struct {
	Path string `yaml:"path"` // Log file path (default "data.json")
}

// RenderConfig defines HTML rendering and PDF export options.
type RenderConfig struct {
	Engine  string `yaml:"engine"`  // "auto", "pandoc", or "goldmark"
	Timeout string `yaml:"timeout"` // PDF generation timeout, e.g. "30s", "2m"
}

// DefaultConfig returns an all-defaults configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// validEngines are the accepted render.engine values. Empty means default.
var validEngines = map[string]bool{"": true, "auto": true, "pandoc": true, "goldmark": true}

// Validate checks field values that have a closed domain.
func (c *Config) Validate() error {
	if !validEngines[c.Render.Engine] {
		return fmt.Errorf("%w: %q (must be auto, pandoc, or goldmark)", ErrInvalidEngine, c.Render.Engine)
	}
	return nil
}

// LoadConfig reads and parses the YAML config at path. Unknown fields are
// rejected to catch typos early.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
