// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"loomui.org/core/animate"
	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/system"
)

// Message is a message from the main goroutine to the render worker.
// Payloads are handed over: the sender must not touch them afterwards.
type Message interface {
	Window() system.WindowID
}

// AddWindowPainter installs the painter tree and surface of a new window.
type AddWindowPainter struct {
	WindowID system.WindowID
	Tree     *core.PainterTree

	// Size is the physical size of the surface.
	Size    math32.Vector2
	DPI     float32
	Blitter system.Blitter
}

// MergeUpdate replaces the painter sub-tree rooted at the root of Tree,
// then merges Tree under Parent, or replaces the whole tree when there
// is no parent.
type MergeUpdate struct {
	WindowID  system.WindowID
	Parent    element.ID
	HasParent bool
	Tree      *core.PainterTree
	Bounds    map[element.ID]core.Bounds
}

// UpdateBounds moves painter nodes without a structural change.
type UpdateBounds struct {
	WindowID system.WindowID
	Bounds   map[element.ID]core.Bounds
}

// UpdateState replaces the painter and state snapshot of painter nodes.
type UpdateState struct {
	WindowID system.WindowID
	Painters map[element.ID]*core.PainterElement
}

// AnimationRequests registers animation drivers for an element.
type AnimationRequests struct {
	WindowID system.WindowID
	Element  element.ID
	Requests []animate.Request
}

// Resize reconfigures the surface of a window.
type Resize struct {
	WindowID system.WindowID
	Size     math32.Vector2
	Bounds   map[element.ID]core.Bounds
}

// DragOverlay sets the drag preview painted over a window at Pos,
// in logical coordinates. A nil Tree removes the preview.
type DragOverlay struct {
	WindowID system.WindowID
	Tree     *core.PainterTree
	Pos      math32.Vector2
}

// MoveDragOverlay moves the drag preview.
type MoveDragOverlay struct {
	WindowID system.WindowID
	Pos      math32.Vector2
}

// RemoveWindow drops everything the worker holds for a window.
type RemoveWindow struct {
	WindowID system.WindowID
}

func (m AddWindowPainter) Window() system.WindowID  { return m.WindowID }
func (m MergeUpdate) Window() system.WindowID       { return m.WindowID }
func (m UpdateBounds) Window() system.WindowID      { return m.WindowID }
func (m UpdateState) Window() system.WindowID       { return m.WindowID }
func (m AnimationRequests) Window() system.WindowID { return m.WindowID }
func (m Resize) Window() system.WindowID            { return m.WindowID }
func (m DragOverlay) Window() system.WindowID       { return m.WindowID }
func (m MoveDragOverlay) Window() system.WindowID   { return m.WindowID }
func (m RemoveWindow) Window() system.WindowID      { return m.WindowID }

// FrameEvents are the widget animation events of one window in one
// frame, sent from the worker back to the main goroutine.
type FrameEvents struct {
	WindowID system.WindowID
	Events   []animate.ElementEvent
}
