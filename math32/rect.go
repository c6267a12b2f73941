// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle given by its top-left position
// and its size.
type Rect struct {
	Pos  Vector2
	Size Vector2
}

// R2 returns a new [Rect] from the given position and size components.
func R2(x, y, w, h float32) Rect {
	return Rect{Vec2(x, y), Vec2(w, h)}
}

// RectFromSize returns a [Rect] of the given size at the origin.
func RectFromSize(size Vector2) Rect {
	return Rect{Size: size}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v %v]", r.Pos, r.Size)
}

// Max returns the bottom-right corner of the rectangle.
func (r Rect) Max() Vector2 {
	return r.Pos.Add(r.Size)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector2 {
	return r.Pos.Add(r.Size.MulScalar(0.5))
}

// Contains returns whether the point lies inside the rectangle.
// The top and left edges are inclusive, the bottom and right edges
// exclusive, so adjacent rectangles never both contain a point.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Pos.X && p.Y >= r.Pos.Y &&
		p.X < r.Pos.X+r.Size.X && p.Y < r.Pos.Y+r.Size.Y
}

// Offset returns the rectangle translated by the given vector.
func (r Rect) Offset(v Vector2) Rect {
	return Rect{r.Pos.Add(v), r.Size}
}

// Inset returns the rectangle shrunk by d on every side.
// The size never becomes negative.
func (r Rect) Inset(d float32) Rect {
	return Rect{
		Pos:  r.Pos.Add(Vec2(d, d)),
		Size: Vec2(Max(r.Size.X-2*d, 0), Max(r.Size.Y-2*d, 0)),
	}
}

// Intersect returns the overlap of the two rectangles,
// which has zero size if they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	mn := r.Pos.Max(o.Pos)
	mx := r.Max().Min(o.Max())
	return Rect{mn, mx.Sub(mn).Max(Vector2{})}
}

// IsEmpty returns whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// ToRect returns the rectangle as an [image.Rectangle], rounding outward.
func (r Rect) ToRect() image.Rectangle {
	mx := r.Max()
	return image.Rect(int(Floor(r.Pos.X)), int(Floor(r.Pos.Y)), int(Ceil(mx.X)), int(Ceil(mx.Y)))
}
