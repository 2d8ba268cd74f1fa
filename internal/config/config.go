// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads racechart's settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aclements/racechart/chart"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalid wraps all validation errors.
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is the prefix of environment variables that override
// configuration keys. RACECHART_CONFIG names a config file.
const EnvPrefix = "RACECHART_"

// Margins mirrors chart.Margins. Zero fields keep the variant's
// margins.
type Margins struct {
	Top    float64 `koanf:"top"`
	Right  float64 `koanf:"right"`
	Bottom float64 `koanf:"bottom"`
	Left   float64 `koanf:"left"`
}

// Config is the full set of settings.
type Config struct {
	// Variant is one of chart.VariantAxes, VariantLegend, or
	// VariantFull.
	Variant string `koanf:"variant"`

	// Width, Height, and Margin override the variant's size when
	// non-zero.
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
	Margin Margins `koanf:"margin"`

	// Title and Subtitle override the full variant's titles.
	Title    string `koanf:"title"`
	Subtitle string `koanf:"subtitle"`

	// Data is a JSON dataset to use instead of the bundled one.
	Data string `koanf:"data"`

	// Format is the render output format: svg, html, or png.
	Format string `koanf:"format"`
	// Output is the render output file; "" means stdout.
	Output string `koanf:"output"`
	// Viewer is a command line to open the output file with.
	Viewer string `koanf:"viewer"`

	// Addr is the serve listen address.
	Addr string `koanf:"addr"`

	LogLevel string `koanf:"log_level"`
	LogJSON  bool   `koanf:"log_json"`

	// Debug disables script minification.
	Debug bool `koanf:"debug"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Variant:  chart.VariantFull,
		Format:   "svg",
		Addr:     "localhost:8080",
		LogLevel: "info",
	}
}

// Load layers, from lowest to highest precedence: the defaults, the
// YAML file at path (or at $RACECHART_CONFIG if path is ""), and
// RACECHART_* environment variables. Nested keys use a double
// underscore, as in RACECHART_MARGIN__TOP.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg for errors that would otherwise only show up
// later.
func (cfg *Config) Validate() error {
	if _, err := chart.VariantConfig(cfg.Variant); err != nil {
		return fmt.Errorf("%w: variant %q", ErrInvalid, cfg.Variant)
	}
	switch cfg.Format {
	case "svg", "html", "png":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, cfg.Format)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return fmt.Errorf("%w: negative size %gx%g", ErrInvalid, cfg.Width, cfg.Height)
	}
	if cfg.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalid)
	}
	return nil
}

// Chart returns the chart configuration for cfg's variant with cfg's
// overrides applied.
func (cfg *Config) Chart() (chart.Config, error) {
	c, err := chart.VariantConfig(cfg.Variant)
	if err != nil {
		return c, err
	}
	if cfg.Width > 0 {
		c.Width = cfg.Width
	}
	if cfg.Height > 0 {
		c.Height = cfg.Height
	}
	m := cfg.Margin
	for _, o := range []struct {
		v   float64
		dst *float64
	}{
		{m.Top, &c.Margin.Top},
		{m.Right, &c.Margin.Right},
		{m.Bottom, &c.Margin.Bottom},
		{m.Left, &c.Margin.Left},
	} {
		if o.v > 0 {
			*o.dst = o.v
		}
	}
	if cfg.Title != "" {
		c.Title = cfg.Title
	}
	if cfg.Subtitle != "" {
		c.Subtitle = cfg.Subtitle
	}
	return c, nil
}
