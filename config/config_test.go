// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, slog.LevelWarn, c.Level())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.BackgroundColor())
	assert.Equal(t, 60, c.FrameRate)
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
log_level = "debug"
scroll_speed = 2.5
background = "#ff8000"

[window]
title = "counter"
`))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, c.Level())
	assert.Equal(t, float32(2.5), c.ScrollSpeed)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c.BackgroundColor())
	assert.Equal(t, Window{Width: 800, Height: 600, Title: "counter"}, c.Window)
	assert.Equal(t, 60, c.FrameRate)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		`frame_rate = 0`,
		`scroll_speed = -1.0`,
		`background = "blue"`,
		`log_level = "loud"`,
		`unknown = 1`,
		`frame_rate = "fast"`,
	} {
		_, err := Parse([]byte(src))
		assert.Error(t, err, src)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	path := filepath.Join(dir, "loom.toml")
	b, err := Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))
	c, err = Open(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestOpenHome(t *testing.T) {
	c, err := Open("~/.loom-config-that-does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`frame_rate = 30`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { got <- c })
	}()

	// the watcher may not be registered yet, and a reload may observe a
	// truncated file: keep writing until the new rate is seen
	deadline := time.After(5 * time.Second)
	var c *Config
	for c == nil || c.FrameRate != 24 {
		require.NoError(t, os.WriteFile(path, []byte(`frame_rate = 24`), 0o644))
		select {
		case c = <-got:
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
	assert.Equal(t, 24, c.FrameRate)

	cancel()
	assert.NoError(t, <-done)
}
