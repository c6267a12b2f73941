// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"loomui.org/core/math32"
)

var (
	// ScrollWheelSpeed controls how fast the scroll wheel moves: raw
	// wheel deltas are multiplied by it before being routed as [Scroll].
	ScrollWheelSpeed = float32(1)
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// Mouse is a routed pointer event. Pos is in logical coordinates; it is
// window-relative when the event is created and element-relative once
// it has been passed through [Mouse.Local].
type Mouse struct {
	Type   Types
	Button Buttons
	Pos    math32.Vector2

	// Delta is the scroll amount for [Scroll] events.
	Delta math32.Vector2
}

// NewMouse returns a new event of the given type at pos.
func NewMouse(typ Types, but Buttons, pos math32.Vector2) Mouse {
	return Mouse{Type: typ, Button: but, Pos: pos}
}

// NewScroll returns a new [Scroll] event.
func NewScroll(pos, delta math32.Vector2) Mouse {
	return Mouse{Type: Scroll, Pos: pos, Delta: delta}
}

func (ev Mouse) String() string {
	if ev.Type == Scroll {
		return fmt.Sprintf("%v{Delta: %v, Pos: %v}", ev.Type, ev.Delta, ev.Pos)
	}
	return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Type, ev.Button, ev.Pos)
}

// Local returns the event with its position made relative to origin,
// which is the global position of the receiving element.
func (ev Mouse) Local(origin math32.Vector2) Mouse {
	ev.Pos = ev.Pos.Sub(origin)
	return ev
}
