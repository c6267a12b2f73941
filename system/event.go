// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"

	"loomui.org/core/events"
	"loomui.org/core/math32"
)

// WindowID identifies a window. The zero WindowID is never used.
type WindowID uint32

func (id WindowID) String() string {
	return fmt.Sprintf("window%d", uint32(id))
}

// Event is a raw event delivered by the windowing source. Positions and
// sizes are physical.
type Event interface {
	// Window returns the id of the window the event is for.
	Window() WindowID
}

// CursorMoved is sent when the cursor moves inside a window.
type CursorMoved struct {
	WindowID WindowID
	Pos      math32.Vector2
}

// MouseInput is sent when a mouse button is pressed or released.
type MouseInput struct {
	WindowID WindowID
	Button   events.Buttons
	Pressed  bool
}

// MouseWheel is sent for wheel and trackpad scrolling.
type MouseWheel struct {
	WindowID WindowID
	Delta    math32.Vector2
}

// Resized is sent when a window's physical size changes.
type Resized struct {
	WindowID WindowID
	Size     math32.Vector2
}

// Focused is sent when a window gains or loses keyboard focus.
type Focused struct {
	WindowID WindowID
	Focused  bool
}

// CloseRequested is sent when the user asks to close a window.
type CloseRequested struct {
	WindowID WindowID
}

func (e CursorMoved) Window() WindowID    { return e.WindowID }
func (e MouseInput) Window() WindowID     { return e.WindowID }
func (e MouseWheel) Window() WindowID     { return e.WindowID }
func (e Resized) Window() WindowID        { return e.WindowID }
func (e Focused) Window() WindowID        { return e.WindowID }
func (e CloseRequested) Window() WindowID { return e.WindowID }
