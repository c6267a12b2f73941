// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, 5)
	assert.Equal(t, Vec2(4, 7), a.Add(b))
	assert.Equal(t, Vec2(2, 3), b.Sub(a))
	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(0.5, 1), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))
	assert.Equal(t, Vec2(3, 5), a.Max(b))
	assert.Equal(t, Vec2(1, 2), a.Min(b))
	assert.Equal(t, image.Pt(2, 3), Vec2(1.6, 2.5).ToPoint())
	assert.True(t, Vector2{}.IsZero())
}

func TestRectContains(t *testing.T) {
	r := R2(10, 10, 20, 10)
	assert.True(t, r.Contains(Vec2(10, 10)))
	assert.True(t, r.Contains(Vec2(29.9, 19.9)))
	assert.False(t, r.Contains(Vec2(30, 15)))
	assert.False(t, r.Contains(Vec2(15, 20)))
	assert.False(t, r.Contains(Vec2(9, 15)))

	// adjacent rectangles do not share an edge point
	left := R2(0, 0, 10, 10)
	right := R2(10, 0, 10, 10)
	p := Vec2(10, 5)
	assert.NotEqual(t, left.Contains(p), right.Contains(p))
}

func TestRectOps(t *testing.T) {
	r := R2(0, 0, 10, 10)
	assert.Equal(t, R2(5, -5, 10, 10), r.Offset(Vec2(5, -5)))
	assert.Equal(t, R2(2, 2, 6, 6), r.Inset(2))
	assert.Equal(t, R2(6, 6, 0, 0), r.Inset(6))
	assert.Equal(t, R2(5, 5, 5, 5), r.Intersect(R2(5, 5, 10, 10)))
	assert.True(t, r.Intersect(R2(20, 20, 5, 5)).IsEmpty())
	assert.Equal(t, image.Rect(0, 0, 11, 11), R2(0.5, 0.5, 10, 10).ToRect())
	assert.Equal(t, Vec2(5, 5), r.Center())
}
