// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the engine of the toolkit: the widget contract,
// the widget tree with its build, rebuild and merge operations, two-phase
// layout, hit-testing and pointer routing, and the painter tree that is
// handed to the render worker.
package core

import (
	"fmt"

	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/state"
)

// Widget is the interface that all widgets satisfy. A widget is a
// stateless description: everything that changes over the lifetime of an
// element lives in the element's opaque state, created by [Widget.State]
// and replaced by [Mutator]s. All higher-level widget types should embed
// [WidgetBase], which provides a default for every method.
type Widget interface {

	// State returns the initial state of a new element for this widget.
	// It is called once, on the element's first build, and may read
	// the [state.UIState] to seed itself from bindings.
	State(s *state.UIState) any

	// Build returns the child widgets of the element. It is called on the
	// first build and on every rebuild of the element, and the returned
	// widgets fully describe the element's children for this frame.
	// It may record bindings and animation requests through ctx.
	Build(ctx *BuildCtx) []Widget

	// CalculateSize returns the preferred size of the element under the
	// given constraints. It may query its children through ctx. Returning
	// false means "as large as the parent allows": the parent decides.
	CalculateSize(children []element.ID, c math32.Constraints, ctx *SizeCtx) (math32.Vector2, bool)

	// Layout positions every child within the assigned size, using
	// [LayoutCtx.SetChildBounds] or [LayoutCtx.SetChildPosition].
	// Children it does not position keep zero-size bounds.
	Layout(s *state.UIState, ctx *LayoutCtx, size math32.Vector2, children []element.ID)

	// Painter returns the drawing intent of the element, or nil if it
	// draws nothing. It is called whenever the painter tree is regenerated.
	Painter(s *state.UIState) Painter

	// MouseEvent handles one routed pointer event. It may change its
	// state with [EventCtx.SetState], request animations, start a drag,
	// and dispatch application messages through msgs.
	MouseEvent(s *state.UIState, ctx *EventCtx, msgs *MessageCtx)

	// AnimationEvent handles a Start, Update or End event of one of the
	// widget animations the element requested.
	AnimationEvent(ctx *EventCtx, s *state.UIState)

	// BindingChanged returns what must be redone for the element when
	// the bound name changes.
	BindingChanged(name string) Actions

	// InterceptMouseEvents returns whether the element receives the
	// pointer events that hit it even when a descendant is also hit.
	InterceptMouseEvents() bool
}

// Actions are the coarse actions an element can require when one of its
// bindings changes, in increasing order of cost.
type Actions int32

const (
	// NoAction means the change does not affect the element.
	NoAction Actions = iota

	// NeedsPaint regenerates the element's painter snapshot.
	NeedsPaint

	// NeedsLayout re-lays out the element's parent sub-tree.
	NeedsLayout

	// NeedsBuild rebuilds the element's sub-tree.
	NeedsBuild
)

func (a Actions) String() string {
	switch a {
	case NeedsPaint:
		return "NeedsPaint"
	case NeedsLayout:
		return "NeedsLayout"
	case NeedsBuild:
		return "NeedsBuild"
	}
	return "NoAction"
}

// Mutator is a pure function from an old state snapshot to a new one.
type Mutator func(old any) any

// StateAs returns v as a T. It panics if v has another type: a widget
// reading its state with the wrong type is a programmer error.
func StateAs[T any](v any) T {
	t, ok := v.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("core: state is %T, not %T", v, zero))
	}
	return t
}

// MutatorOf adapts a typed state function to a [Mutator].
func MutatorOf[T any](f func(old T) T) Mutator {
	return func(old any) any {
		return f(StateAs[T](old))
	}
}

// WidgetBase provides the default implementation of every [Widget]
// method. Embed it and override what the widget needs.
type WidgetBase struct{}

// State returns nil: the widget has no state.
func (WidgetBase) State(s *state.UIState) any { return nil }

// Build returns no children.
func (WidgetBase) Build(ctx *BuildCtx) []Widget { return nil }

// CalculateSize returns false: the widget takes what its parent gives.
func (WidgetBase) CalculateSize(children []element.ID, c math32.Constraints, ctx *SizeCtx) (math32.Vector2, bool) {
	return math32.Vector2{}, false
}

// Layout lays every child over the whole assigned area.
func (WidgetBase) Layout(s *state.UIState, ctx *LayoutCtx, size math32.Vector2, children []element.ID) {
	LayoutStack(ctx, size, children)
}

// Painter returns nil: the widget draws nothing.
func (WidgetBase) Painter(s *state.UIState) Painter { return nil }

// MouseEvent ignores the event.
func (WidgetBase) MouseEvent(s *state.UIState, ctx *EventCtx, msgs *MessageCtx) {}

// AnimationEvent ignores the event.
func (WidgetBase) AnimationEvent(ctx *EventCtx, s *state.UIState) {}

// BindingChanged returns [NeedsBuild].
func (WidgetBase) BindingChanged(name string) Actions { return NeedsBuild }

// InterceptMouseEvents returns false.
func (WidgetBase) InterceptMouseEvents() bool { return false }

// LayoutStack lays every child over the whole of size.
func LayoutStack(ctx *LayoutCtx, size math32.Vector2, children []element.ID) {
	for _, c := range children {
		ctx.SetChildBounds(c, math32.RectFromSize(size))
	}
}
