// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// based on golang.org/x/exp/shiny:
// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the operating system interface the engine
// consumes: an [App] that creates windows and delivers raw input
// events, [Window]s with a device pixel ratio, and the GPU [Blitter]
// that presents CPU-rendered frames.
package system

import (
	"loomui.org/core/math32"
)

// App represents the overall OS GUI hardware: it creates windows and
// delivers their raw events.
type App interface {

	// NewWindow returns a new Window with the given options.
	NewWindow(opts NewWindowOptions) (Window, error)

	// Events returns the channel on which raw window events are delivered.
	// The main loop suspends on it while it has nothing else to do.
	Events() <-chan Event

	// Quit closes every window and stops delivering events.
	Quit()
}

// NewWindowOptions are the options for [App.NewWindow]. Sizes are logical.
type NewWindowOptions struct {
	Title  string
	Width  int
	Height int
}

// Window is an OS window.
type Window interface {

	// ID returns the unique id of the window.
	ID() WindowID

	// Title returns the displayed name of the window.
	Title() string

	// Size returns the physical size of the window in pixels.
	Size() math32.Vector2

	// DevicePixelRatio returns the factor between physical pixels and
	// logical units; raw cursor positions are divided by it.
	DevicePixelRatio() float32

	// NewBlitter returns a blitter presenting to this window's surface.
	NewBlitter() (Blitter, error)

	// Close closes the window.
	Close() error
}

// SurfaceConfig is the configuration of a swap-chain surface.
type SurfaceConfig struct {
	Width  int
	Height int
}

// Blitter uploads CPU-rendered frames to a window's swap-chain texture.
type Blitter interface {

	// CopyToTexture uploads a BGRA8 premultiplied pixel buffer of the
	// given size and presents it.
	CopyToTexture(pixels []byte, width, height int) error

	// Rebuild reconfigures the surface, typically after a resize.
	Rebuild(cfg SurfaceConfig) error
}
