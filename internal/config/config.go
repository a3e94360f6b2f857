package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/plan"
)

// FileNames are the config files looked up by Find, in order.
var FileNames = []string{
	"builder-generator.yaml",
	"builder-generator.yml",
	"builder-generator.toml",
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	colorModes = []string{ColorAuto, ColorAlways, ColorNever}
)

// Config holds all settings of one run.
type Config struct {
	Packages     []string `yaml:"packages" toml:"packages"`
	Dir          string   `yaml:"dir" toml:"dir"`
	Workers      int      `yaml:"workers" toml:"workers"`
	MinGoVersion string   `yaml:"min_go_version" toml:"min_go_version"`
	DryRun       bool     `yaml:"dry_run" toml:"dry_run"`
	LogLevel     string   `yaml:"log_level" toml:"log_level"`
	LogFormat    string   `yaml:"log_format" toml:"log_format"`
	Color        string   `yaml:"color" toml:"color"`
	BuildFlags   []string `yaml:"build_flags,omitempty" toml:"build_flags,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// Find returns the first config file present in dir, or "" if there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// LoadFile loads and parses a config file. The format follows the file
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Format is a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// Parse parses config data in the given format and applies defaults.
func Parse(data []byte, format Format) (*Config, error) {
	var c Config

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		// An empty document decodes to EOF.
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for unset keys.
func applyDefaults(c *Config) {
	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}

	if c.Dir == "" {
		c.Dir = "."
	}

	if c.MinGoVersion == "" {
		c.MinGoVersion = plan.DefaultMinGoVersion
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Validate checks value ranges. It does not touch the file system.
func Validate(c *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError(diagnostic.KindNone, "config is nil", "", "")
		return res
	}

	if c.Workers < 0 {
		res.AddError(diagnostic.KindNone, fmt.Sprintf("workers must not be negative, got %d", c.Workers), "", "workers")
	}

	if !plan.ValidGoVersion(c.MinGoVersion) {
		res.AddError(diagnostic.KindNone, fmt.Sprintf("invalid min_go_version %q", c.MinGoVersion), "", "min_go_version")
	}

	checkOneOf(res, "log_level", c.LogLevel, logLevels)
	checkOneOf(res, "log_format", c.LogFormat, logFormats)
	checkOneOf(res, "color", c.Color, colorModes)

	for _, p := range c.Packages {
		if strings.TrimSpace(p) == "" {
			res.AddError(diagnostic.KindNone, "empty package pattern", "", "packages")
		}
	}

	return res
}

func checkOneOf(res *diagnostic.Diagnostics, key, value string, allowed []string) {
	if slices.Contains(allowed, value) {
		return
	}

	res.AddError(diagnostic.KindNone,
		fmt.Sprintf("invalid %s %q, want one of %s", key, value, strings.Join(allowed, ", ")), "", key)
}

// FileName returns the config file name written for format.
func FileName(format Format) string {
	return "builder-generator." + string(format)
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatYAML, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown config format %q, want %s or %s", name, FormatYAML, FormatTOML)
	}
}

// Marshal serializes c in the given format.
func Marshal(c *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
}

// WriteFile writes c to path. The format follows the file extension.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c, formatOf(path))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
