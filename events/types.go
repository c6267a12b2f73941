// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the semantic pointer events that a user
// interface synthesises from raw window input and routes to widgets.
package events

import "strconv"

// Types determines the type of a routed pointer event.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// MouseMove is sent when the pointer moves with no button down.
	MouseMove

	// MouseDown is sent when a button is pressed.
	MouseDown

	// MouseUp is sent when a button is released. It is also sent to
	// every element that received the matching MouseDown.
	MouseUp

	// MouseDragStart is sent on the first move after a MouseDown.
	MouseDragStart

	// MouseDrag is sent on every later move while the button is down.
	// The elements that received the MouseDown keep receiving it even
	// after the pointer leaves their bounds.
	MouseDrag

	// MouseDragEnd precedes MouseUp when a drag was in progress.
	MouseDragEnd

	// Scroll is for scroll wheel or other scrolling gestures.
	// Delta holds the scroll amount.
	Scroll
)

var typeNames = [...]string{"UnknownType", "MouseMove", "MouseDown", "MouseUp", "MouseDragStart", "MouseDrag", "MouseDragEnd", "Scroll"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Types(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// IsDrag returns whether the type belongs to a drag sequence, and is
// therefore also delivered to the elements holding the mouse down.
func (t Types) IsDrag() bool {
	return t == MouseDragStart || t == MouseDrag || t == MouseDragEnd
}
