// Package config holds the explicit per-run configuration for the chart
// pipeline: one source, one destination, logging. Values come from
// ORGCHART_* environment variables, optionally overlaid by a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all orgchart configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig holds source-table settings.
type SourceConfig struct {
	Type  string `yaml:"type"`  // "csv", "xlsx", "web"
	Path  string `yaml:"path"`  // csv/xlsx file path
	Sheet string `yaml:"sheet"` // xlsx sheet name, empty = first
	URL   string `yaml:"url"`   // web CSV export URL
	Token string `yaml:"token"` // web bearer token, optional
}

// OutputConfig holds destination document settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "markdown", "term", or a comma list
	Path   string `yaml:"path"`   // markdown destination path
}

// LoggingConfig holds log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Source: SourceConfig{
			Type:  getenv("ORGCHART_SOURCE_TYPE", "csv"),
			Path:  getenv("ORGCHART_SOURCE_PATH", "employees.csv"),
			Sheet: os.Getenv("ORGCHART_SOURCE_SHEET"),
			URL:   os.Getenv("ORGCHART_SOURCE_URL"),
			Token: os.Getenv("ORGCHART_SOURCE_TOKEN"),
		},
		Output: OutputConfig{
			Format: getenv("ORGCHART_OUTPUT", "markdown"),
			Path:   getenv("ORGCHART_OUTPUT_PATH", "orgchart.md"),
		},
		Logging: LoggingConfig{
			Level:  getenv("ORGCHART_LOG_LEVEL", "info"),
			Format: getenv("ORGCHART_LOG_FORMAT", "text"),
		},
	}
}

// LoadFile overlays a YAML file on the environment configuration.
// Keys present in the file win; absent keys keep env/default values.
func LoadFile(path string) (Config, error) {
	cfg := Load()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Formats splits the output format list.
func (c Config) Formats() []string {
	var formats []string
	for _, f := range strings.Split(c.Output.Format, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// Validate checks the whole configuration and reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Source.Type {
	case "csv", "xlsx":
		if c.Source.Path == "" {
			errs = append(errs, fmt.Errorf("source path is required for type %q", c.Source.Type))
		}
	case "web":
		if c.Source.URL == "" {
			errs = append(errs, errors.New(`source url is required for type "web"`))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source type %q", c.Source.Type))
	}

	formats := c.Formats()
	if len(formats) == 0 {
		errs = append(errs, errors.New("output format is required"))
	}
	for _, f := range formats {
		switch f {
		case "markdown", "term":
		default:
			errs = append(errs, fmt.Errorf("unknown output format %q", f))
		}
	}
	if containsFormat(formats, "markdown") && c.Output.Path == "" {
		errs = append(errs, errors.New("output path is required for markdown"))
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

func containsFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
