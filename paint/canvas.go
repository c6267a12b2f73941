// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint defines the 2D drawing surface that painters draw on,
// along with paint, font and text types and text metrics.
package paint

import (
	"image/color"

	"loomui.org/core/math32"
)

// Styles determines whether shapes are filled or stroked.
type Styles int32

const (
	// Fill fills the shape.
	Fill Styles = iota

	// Stroke outlines the shape with the paint's StrokeWidth.
	Stroke
)

// Paint carries the color and style of a drawing operation.
type Paint struct {
	Color       color.RGBA
	Style       Styles
	StrokeWidth float32
}

// FillPaint returns a [Fill] paint of the given color.
func FillPaint(c color.RGBA) Paint {
	return Paint{Color: c}
}

// StrokePaint returns a [Stroke] paint of the given color and width.
func StrokePaint(c color.RGBA, width float32) Paint {
	return Paint{Color: c, Style: Stroke, StrokeWidth: width}
}

// Canvas is a 2D drawing surface with a transform and clip stack.
// Coordinates are logical and are mapped through the current transform.
type Canvas interface {

	// Save pushes the current transform and clip.
	Save()

	// Restore pops the transform and clip pushed by the matching Save.
	Restore()

	// Translate offsets the current transform.
	Translate(v math32.Vector2)

	// Scale scales the current transform.
	Scale(s math32.Vector2)

	// Clear fills the whole surface with c, ignoring transform and clip.
	Clear(c color.RGBA)

	// DrawRect draws a rectangle.
	DrawRect(r math32.Rect, p Paint)

	// DrawRoundedRect draws a rectangle with elliptical corners.
	DrawRoundedRect(r math32.Rect, rx, ry float32, p Paint)

	// DrawCircle draws a circle.
	DrawCircle(center math32.Vector2, radius float32, p Paint)

	// DrawString draws text inside r, top-left aligned.
	DrawString(r math32.Rect, text string, f Font, p Paint)

	// ClipRect intersects the current clip with r.
	ClipRect(r math32.Rect)

	// Pixels returns the rendered surface as BGRA8 premultiplied bytes,
	// or false if the canvas has no pixel storage.
	Pixels() ([]byte, bool)

	// Size returns the physical size of the surface.
	Size() (width, height int)
}
