// Package config loads the pathedit CLI settings from a YAML file.
//
// A section path selects a nested part of the file, using colon (:) as the separator:
//
//	"tools:pathedit"  -> file["tools"]["pathedit"]
//	""                -> entire document
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var (
	// ErrSectionNotFound is returned when the requested section is missing from the file.
	ErrSectionNotFound = errors.New("config section not found")
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid config")
)

// Config holds the CLI settings. Zero values are filled in by SetDefaults.
type Config struct {
	Delimiter string `yaml:"delimiter"`
	Prune     *bool  `yaml:"prune"`
	Indent    int    `yaml:"indent"`
	Output    string `yaml:"output"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns a Config with every default applied.
func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults fills unset fields and reports whether anything changed.
func (c *Config) SetDefaults() bool {
	changed := false
	if c.Delimiter == "" {
		c.Delimiter = "/"
		changed = true
	}
	if c.Prune == nil {
		prune := true
		c.Prune = &prune
		changed = true
	}
	if c.Indent == 0 {
		c.Indent = 2
		changed = true
	}
	if c.Output == "" {
		c.Output = FormatYAML
		changed = true
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
		changed = true
	}
	return changed
}

// Validate checks the settings after defaults were applied.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > 16 {
		return fmt.Errorf("%w: indent %d out of range [0, 16]", ErrInvalid, c.Indent)
	}
	switch strings.ToLower(c.Output) {
	case FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: output %q must be %q or %q", ErrInvalid, c.Output, FormatYAML, FormatJSON)
	}
	return nil
}

// PruneEnabled reports the effective prune setting.
func (c *Config) PruneEnabled() bool {
	return c.Prune == nil || *c.Prune
}

// Load parses data, optionally narrowed to section, then applies defaults and validation.
func Load(data []byte, section string) (Config, error) {
	var c Config
	if len(bytes.TrimSpace(data)) > 0 {
		if err := parse(data, section, &c); err != nil {
			return Config{}, err
		}
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads path and hands its contents to Load.
func LoadFile(path, section string) (Config, error) {
	clean := filepath.Clean(path)
	data, err := os.ReadFile(clean) // #nosec G304 -- path comes from the operator
	if err != nil {
		return Config{}, fmt.Errorf("reading config %q: %w", clean, err)
	}
	c, err := Load(data, section)
	if err != nil {
		return Config{}, fmt.Errorf("config %q: %w", clean, err)
	}
	return c, nil
}

func parse(data []byte, section string, target *Config) error {
	if section == "" {
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}
		return nil
	}

	p, err := yaml.PathString("$." + strings.Join(strings.Split(section, ":"), "."))
	if err != nil {
		return fmt.Errorf("invalid section %q: %w", section, err)
	}
	if err := p.Read(bytes.NewReader(data), target); err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}
		return fmt.Errorf("reading section %q: %w", section, err)
	}
	return nil
}
