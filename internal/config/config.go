// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration. Zero fields take their default.
type Config struct {
	Theme       string `yaml:"theme"`
	LogLevel    string `yaml:"log_level"`
	Placeholder string `yaml:"placeholder"`
	CharLimit   int    `yaml:"char_limit"`
	AltScreen   *bool  `yaml:"alt_screen"`
}

func Default() Config {
	alt := true
	return Config{
		Theme:       "classic",
		LogLevel:    "warn",
		Placeholder: "User name...",
		CharLimit:   200,
		AltScreen:   &alt,
	}
}

// UseAltScreen reports whether the page takes over the whole terminal.
func (c Config) UseAltScreen() bool { return c.AltScreen == nil || *c.AltScreen }

// Load reads path on top of Default. An empty path returns the defaults;
// a path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.merge(file), nil
}

func (c Config) merge(o Config) Config {
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.Placeholder != "" {
		c.Placeholder = o.Placeholder
	}
	if o.CharLimit != 0 {
		c.CharLimit = o.CharLimit
	}
	if o.AltScreen != nil {
		c.AltScreen = o.AltScreen
	}
	return c
}
