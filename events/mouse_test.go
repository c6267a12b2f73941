// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"loomui.org/core/math32"
)

func TestLocal(t *testing.T) {
	ev := NewMouse(MouseDown, Left, math32.Vec2(30, 40))
	loc := ev.Local(math32.Vec2(10, 15))
	assert.Equal(t, math32.Vec2(20, 25), loc.Pos)
	assert.Equal(t, MouseDown, loc.Type)
	assert.Equal(t, math32.Vec2(30, 40), ev.Pos, "original untouched")
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "MouseDragStart", MouseDragStart.String())
	assert.Equal(t, "Types(99)", Types(99).String())
	assert.True(t, MouseDrag.IsDrag())
	assert.True(t, MouseDragEnd.IsDrag())
	assert.False(t, MouseUp.IsDrag())
	assert.Contains(t, NewScroll(math32.Vec2(1, 2), math32.Vec2(0, -2)).String(), "Delta")
}
