// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads tsplot's defaults from the environment and an
// optional tsplot.yaml file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds tool-wide defaults. Command-line flags take precedence
// over these.
type Config struct {
	// MaxTicks limits the number of major ticks when the display
	// cadence is chosen automatically.
	MaxTicks int

	// DPI is the resolution of rendered pages.
	DPI int

	// PageWidth and PageHeight override the page size in inches.
	// Zero means US letter in the page's orientation.
	PageWidth, PageHeight float64

	// DateLayout is the default time.Parse layout for dates given
	// on the command line and in books. Empty means the series
	// package defaults.
	DateLayout string

	LogLevel string
}

// Load reads configuration from tsplot.yaml in dir, if present, and
// from TSPLOT_* environment variables, which take precedence. An
// empty dir means the current directory.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("max_ticks", 12)
	v.SetDefault("dpi", 100)
	v.SetDefault("page_width", 0.0)
	v.SetDefault("page_height", 0.0)
	v.SetDefault("date_layout", "")
	v.SetDefault("log_level", "info")

	if dir == "" {
		dir = "."
	}
	v.SetConfigName("tsplot")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("TSPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"max_ticks", "dpi", "page_width", "page_height", "date_layout", "log_level"} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		MaxTicks:   v.GetInt("max_ticks"),
		DPI:        v.GetInt("dpi"),
		PageWidth:  v.GetFloat64("page_width"),
		PageHeight: v.GetFloat64("page_height"),
		DateLayout: v.GetString("date_layout"),
		LogLevel:   v.GetString("log_level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxTicks < 1 {
		return fmt.Errorf("max_ticks must be positive, got %d", c.MaxTicks)
	}
	if c.DPI < 1 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}
	if c.PageWidth < 0 || c.PageHeight < 0 {
		return fmt.Errorf("page size %vx%v is negative", c.PageWidth, c.PageHeight)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
