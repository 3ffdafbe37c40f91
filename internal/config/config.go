// Package config loads licstamp configuration.
//
// Configuration lives in a .licstamp.yaml file at the root of the stamped
// tree. Every field is optional; a missing file yields defaults, which stamp
// the built-in Apache-2.0 header.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/davidoh-dev/licstamp/internal/license"
)

// DefaultFileName is the config file looked up at the root of the stamped tree.
const DefaultFileName = ".licstamp.yaml"

// Config holds all licstamp configuration.
type Config struct {
	// HeaderFile is a path to a file holding the raw header text, resolved
	// relative to the config file's directory. Mutually exclusive with Header.
	HeaderFile string `yaml:"header_file"`

	// Header is the inline header text, one content line per element.
	Header []string `yaml:"header"`

	// Holder replaces the {holder} token in the header text.
	Holder string `yaml:"holder"`

	// Exclude lists path suffixes to skip while walking.
	Exclude []string `yaml:"exclude"`

	// Force stamps files in place by default instead of leaving .new siblings.
	Force bool `yaml:"force"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Load reads the config file at path. A missing file is not an error and
// yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.HeaderFile != "" && len(cfg.Header) > 0 {
		return nil, fmt.Errorf("header_file and header are mutually exclusive in %s", path)
	}
	return cfg, nil
}

// Source builds the license source described by the config. dir is the
// directory the config file lives in, used to resolve a relative HeaderFile.
func (c *Config) Source(dir string) (*license.Source, error) {
	if c.HeaderFile != "" {
		path := c.HeaderFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return license.FromFile(path, c.Holder)
	}
	return &license.Source{Template: c.Header, Holder: c.Holder}, nil
}
