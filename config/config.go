// Package config provides configuration loading and management for semschema.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semschema/export"
	"github.com/c360studio/semschema/query"
	"github.com/c360studio/semschema/schema"
)

// Defaults used when nothing else is configured.
const (
	DefaultInput    = "schemaorg-current-https.ttl"
	DefaultOutput   = "jsonldSchema.json"
	DefaultFormat   = string(export.FormatJSON)
	DefaultLogLevel = "info"
)

// Config represents the complete semschema configuration
type Config struct {
	Input    InputConfig         `yaml:"input"`
	Output   OutputConfig        `yaml:"output"`
	Query    QueryConfig         `yaml:"query"`
	Required map[string][]string `yaml:"required"`
	Metrics  MetricsConfig       `yaml:"metrics"`
	Log      LogConfig           `yaml:"log"`
}

// InputConfig configures the vocabulary sources
type InputConfig struct {
	// Paths are files or doublestar globs (e.g. "vocab/**/*.ttl")
	Paths []string `yaml:"paths"`
}

// OutputConfig configures the generated schema file
type OutputConfig struct {
	// Path is the output file (default: jsonldSchema.json)
	Path string `yaml:"path"`
	// Format is "json" or "js"
	Format string `yaml:"format"`
}

// QueryConfig holds the allow-lists, as schema.org local names
type QueryConfig struct {
	RangeTypes  []string `yaml:"range_types"`
	DomainTypes []string `yaml:"domain_types"`
	Classes     []string `yaml:"classes"`
}

// MetricsConfig configures the Prometheus textfile output
type MetricsConfig struct {
	// Textfile is written after a successful run when set
	Textfile string `yaml:"textfile"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	opts := query.DefaultOptions()
	return &Config{
		Input: InputConfig{
			Paths: []string{DefaultInput},
		},
		Output: OutputConfig{
			Path:   DefaultOutput,
			Format: DefaultFormat,
		},
		Query: QueryConfig{
			RangeTypes:  opts.RangeTypes,
			DomainTypes: opts.DomainTypes,
			Classes:     opts.Classes,
		},
		Required: schema.DefaultRequired(),
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Input.Paths) == 0 {
		return errors.New("input.paths is required")
	}
	for _, p := range c.Input.Paths {
		if strings.TrimSpace(p) == "" {
			return errors.New("input.paths must not contain empty entries")
		}
	}
	if c.Output.Path == "" {
		return errors.New("output.path is required")
	}
	if _, err := export.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if len(c.Query.RangeTypes) == 0 {
		return errors.New("query.range_types must not be empty")
	}
	if len(c.Query.DomainTypes) == 0 {
		return errors.New("query.domain_types must not be empty")
	}
	if len(c.Query.Classes) == 0 {
		return errors.New("query.classes must not be empty")
	}
	for class := range c.Required {
		if class == "" {
			return errors.New("required: class name must not be empty")
		}
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// QueryOptions returns the allow-lists as query options.
func (c *Config) QueryOptions() query.Options {
	return query.Options{
		RangeTypes:  c.Query.RangeTypes,
		DomainTypes: c.Query.DomainTypes,
		Classes:     c.Query.Classes,
	}
}

// RequiredTable returns the required-properties overlay.
func (c *Config) RequiredTable() schema.RequiredTable {
	return schema.RequiredTable(c.Required)
}

// Format returns the parsed output format.
func (c *Config) Format() (export.Format, error) {
	return export.ParseFormat(c.Output.Format)
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	fileConfig, err := readFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	config.Merge(fileConfig)
	return config, nil
}

// readFile decodes a YAML file without applying defaults, so Merge only
// sees the values the file actually sets.
func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Input.Paths) > 0 {
		c.Input.Paths = other.Input.Paths
	}

	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}

	if len(other.Query.RangeTypes) > 0 {
		c.Query.RangeTypes = other.Query.RangeTypes
	}
	if len(other.Query.DomainTypes) > 0 {
		c.Query.DomainTypes = other.Query.DomainTypes
	}
	if len(other.Query.Classes) > 0 {
		c.Query.Classes = other.Query.Classes
	}

	// Required merges per class; a class listed in other replaces its entry.
	if len(other.Required) > 0 {
		if c.Required == nil {
			c.Required = make(map[string][]string, len(other.Required))
		}
		for class, props := range other.Required {
			c.Required[class] = props
		}
	}

	if other.Metrics.Textfile != "" {
		c.Metrics.Textfile = other.Metrics.Textfile
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
