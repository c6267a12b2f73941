// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loomui.org/core/math32"
)

func TestMeasureText(t *testing.T) {
	f := DefaultFont()
	assert.Equal(t, math32.Vec2(35, 13), MeasureText("Hello", f))
	assert.Equal(t, math32.Vec2(0, 13), MeasureText("", f))
	big := Font{Size: 26}
	assert.Equal(t, math32.Vec2(70, 26), MeasureText("Hello", big))

	txt := NewText("abc", f)
	assert.Equal(t, math32.Vec2(21, 13), txt.Size)
}

func TestRecorderTransform(t *testing.T) {
	r := NewRecorder(100, 100)
	red := color.RGBA{255, 0, 0, 255}
	r.Clear(color.RGBA{A: 255})
	r.Save()
	r.Translate(math32.Vec2(10, 20))
	r.Scale(math32.Vec2(2, 2))
	r.DrawRect(math32.R2(1, 1, 5, 5), FillPaint(red))
	r.Save()
	r.Translate(math32.Vec2(3, 0))
	r.DrawString(math32.R2(0, 0, 10, 10), "hi", DefaultFont(), FillPaint(red))
	r.Restore()
	r.Restore()
	r.DrawCircle(math32.Vec2(5, 5), 2, StrokePaint(red, 1))

	require.Len(t, r.Ops, 4)
	assert.Equal(t, math32.R2(12, 22, 10, 10), r.Ops[1].Rect)
	assert.Equal(t, math32.R2(16, 20, 20, 20), r.Ops[2].Rect)
	assert.Equal(t, math32.R2(3, 3, 4, 4), r.Ops[3].Rect)
	assert.Equal(t, []string{"hi"}, r.Texts())
	assert.Len(t, r.Find("Circle"), 1)
	_, ok := r.Pixels()
	assert.False(t, ok)
	assert.Panics(t, r.Restore)
}
