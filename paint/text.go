// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"loomui.org/core/math32"
)

// DefaultFontSize is the font size used when a [Font] has none.
const DefaultFontSize = 13

// Font describes the font used to draw text.
type Font struct {
	Family string
	Size   float32
}

// DefaultFont returns the default font.
func DefaultFont() Font {
	return Font{Family: "basic", Size: DefaultFontSize}
}

func (f Font) size() float32 {
	if f.Size <= 0 {
		return DefaultFontSize
	}
	return f.Size
}

// Text is a measured text snapshot, suitable for storing as widget
// state so that layout and painting agree on its bounds.
type Text struct {
	Content string
	Font    Font
	Size    math32.Vector2
}

// NewText returns the measured snapshot of s in font f.
func NewText(s string, f Font) Text {
	return Text{Content: s, Font: f, Size: MeasureText(s, f)}
}

// Face returns the font face used to render and measure f. The engine
// ships a single fixed-width bitmap face, scaled to the font size.
func Face(f Font) font.Face {
	return basicfont.Face7x13
}

// MeasureText returns the logical size of s drawn in f on one line.
func MeasureText(s string, f Font) math32.Vector2 {
	face := Face(f)
	scale := f.size() / float32(face.Metrics().Height.Ceil())
	w := float32(font.MeasureString(face, s).Ceil())
	h := float32(face.Metrics().Height.Ceil())
	return math32.Vec2(math32.Ceil(w*scale), math32.Ceil(h*scale))
}
