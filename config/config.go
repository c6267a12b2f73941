// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the runtime configuration of an application,
// read from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"loomui.org/core/base/errors"
	"loomui.org/core/base/logx"
)

// Config is the main config struct.
type Config struct {

	// LogLevel is the slog level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// FrameRate is the number of frames per second of the render worker.
	FrameRate int `toml:"frame_rate"`

	// ScrollSpeed multiplies raw wheel deltas.
	ScrollSpeed float32 `toml:"scroll_speed"`

	// Background is the hex color each frame is cleared with.
	Background string `toml:"background"`

	// Window holds the defaults for new windows.
	Window Window `toml:"window"`
}

// Window contains the default window options.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		FrameRate:   60,
		ScrollSpeed: 1,
		Background:  "#ffffff",
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "loom",
		},
	}
}

// Parse decodes a TOML document over the defaults and validates it.
func Parse(b []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the configuration at path, which may start with ~. A
// missing file is not an error: the defaults are returned and the
// problem is logged.
func Open(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		errors.Log(err)
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(b)
}

// Validate returns an error if any field is out of range.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate))
	}
	if c.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("config: scroll_speed must be positive, got %v", c.ScrollSpeed))
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("config: background: %w", err))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("config: negative window size %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// Level returns the configured slog level.
func (c *Config) Level() slog.Level {
	return errors.Log1(logx.LevelFromString(c.LogLevel))
}

// BackgroundColor returns the parsed background color, or white if it
// does not parse.
func (c *Config) BackgroundColor() color.RGBA {
	col, err := colorful.Hex(c.Background)
	if errors.Log(err) != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	r, g, b := col.RGB255()
	return color.RGBA{r, g, b, 255}
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
