// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Bound is an optional constraint value.
type Bound struct {
	Value float32
	Valid bool
}

// Some returns a valid [Bound] with the given value.
func Some(v float32) Bound {
	return Bound{Value: v, Valid: true}
}

// None is the absent [Bound].
var None = Bound{}

func (b Bound) String() string {
	if !b.Valid {
		return "-"
	}
	return fmt.Sprintf("%g", b.Value)
}

// Constraints are the box constraints a parent passes to a child when
// asking for its preferred size. Each of the four bounds is independent
// and optional.
type Constraints struct {
	MinWidth  Bound
	MaxWidth  Bound
	MinHeight Bound
	MaxHeight Bound
}

// Unbounded returns constraints with no bounds at all.
func Unbounded() Constraints {
	return Constraints{}
}

// Tight returns constraints that only allow exactly the given size.
func Tight(size Vector2) Constraints {
	return Constraints{Some(size.X), Some(size.X), Some(size.Y), Some(size.Y)}
}

// Loose returns constraints with the given maximum size and no minimum.
func Loose(size Vector2) Constraints {
	return Constraints{MaxWidth: Some(size.X), MaxHeight: Some(size.Y)}
}

func (c Constraints) String() string {
	return fmt.Sprintf("w[%v,%v] h[%v,%v]", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}

// Shrunk returns the constraints with each present maximum decreased by
// the given amount. Maxima saturate at zero.
func (c Constraints) Shrunk(dw, dh float32) Constraints {
	if c.MaxWidth.Valid {
		c.MaxWidth.Value = Max(c.MaxWidth.Value-dw, 0)
	}
	if c.MaxHeight.Valid {
		c.MaxHeight.Value = Max(c.MaxHeight.Value-dh, 0)
	}
	return c
}

// MaxSize returns the pair of maxima. It returns false when either
// maximum is absent.
func (c Constraints) MaxSize() (Vector2, bool) {
	if !c.MaxWidth.Valid || !c.MaxHeight.Valid {
		return Vector2{}, false
	}
	return Vec2(c.MaxWidth.Value, c.MaxHeight.Value), true
}

// Constrain clamps the given size into the present bounds.
func (c Constraints) Constrain(size Vector2) Vector2 {
	size.X = constrain(size.X, c.MinWidth, c.MaxWidth)
	size.Y = constrain(size.Y, c.MinHeight, c.MaxHeight)
	return size
}

func constrain(v float32, mn, mx Bound) float32 {
	if mx.Valid && v > mx.Value {
		v = mx.Value
	}
	if mn.Valid && v < mn.Value {
		v = mn.Value
	}
	return v
}
