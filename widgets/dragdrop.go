// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"

	"loomui.org/core/core"
	"loomui.org/core/events"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
)

// DragSource starts a drag carrying the value returned by Handler when
// the pointer is dragged from it. Preview, if set, follows the pointer.
type DragSource[T any] struct {
	core.WidgetBase
	Child   core.Widget
	Handler func() T
	Preview core.Widget
}

// DragSourceState is the state of a [DragSource].
type DragSourceState struct {
	Dragging bool
}

// NewDragSource returns a drag source around child.
func NewDragSource[T any](child core.Widget, handler func() T) *DragSource[T] {
	return &DragSource[T]{Child: child, Handler: handler}
}

func (d *DragSource[T]) State(s *state.UIState) any { return DragSourceState{} }

func (d *DragSource[T]) Build(ctx *core.BuildCtx) []core.Widget {
	return single(d.Child)
}

func (d *DragSource[T]) InterceptMouseEvents() bool { return true }

func (d *DragSource[T]) MouseEvent(s *state.UIState, ctx *core.EventCtx, msgs *core.MessageCtx) {
	switch ctx.Event().Type {
	case events.MouseDragStart:
		if !ctx.HoldsMouse() {
			return
		}
		ctx.StartDrag(d.Handler(), d.Preview)
		ctx.SetState(core.MutatorOf(func(st DragSourceState) DragSourceState {
			st.Dragging = true
			return st
		}))
	case events.MouseUp:
		if !core.StateAs[DragSourceState](ctx.State()).Dragging {
			return
		}
		ctx.SetState(core.MutatorOf(func(st DragSourceState) DragSourceState {
			st.Dragging = false
			return st
		}))
	}
}

// DropTarget accepts drops of values of type T for which Accept
// returns true.
type DropTarget[T any] struct {
	core.WidgetBase
	Child  core.Widget
	Accept func(data T) bool

	// Highlight is painted while an acceptable drag hovers the target.
	Highlight color.RGBA
}

// DropTargetState is the state of a [DropTarget].
type DropTargetState struct {
	Hovered  bool
	Accepted bool
}

// NewDropTarget returns a drop target around child.
func NewDropTarget[T any](child core.Widget, accept func(data T) bool) *DropTarget[T] {
	return &DropTarget[T]{Child: child, Accept: accept, Highlight: color.RGBA{0x80, 0xc0, 0xff, 0xff}}
}

func (d *DropTarget[T]) State(s *state.UIState) any { return DropTargetState{} }

func (d *DropTarget[T]) Build(ctx *core.BuildCtx) []core.Widget {
	return single(d.Child)
}

func (d *DropTarget[T]) InterceptMouseEvents() bool { return true }

// acceptable returns whether the drag in progress carries a T accepted
// by the target.
func (d *DropTarget[T]) acceptable(ctx *core.EventCtx) bool {
	data, ok := ctx.DragData()
	if !ok {
		return false
	}
	v, ok := data.(T)
	return ok && (d.Accept == nil || d.Accept(v))
}

func (d *DropTarget[T]) MouseEvent(s *state.UIState, ctx *core.EventCtx, msgs *core.MessageCtx) {
	st := core.StateAs[DropTargetState](ctx.State())
	switch ctx.Event().Type {
	case events.MouseDrag:
		hover := ctx.Contains() && d.acceptable(ctx)
		if hover != st.Hovered {
			ctx.SetState(core.MutatorOf(func(st DropTargetState) DropTargetState {
				st.Hovered = hover
				return st
			}))
		}
	case events.MouseDragEnd:
		accepted := ctx.Contains() && d.acceptable(ctx)
		ctx.SetState(core.MutatorOf(func(st DropTargetState) DropTargetState {
			st.Hovered = false
			st.Accepted = st.Accepted || accepted
			return st
		}))
	}
}

func (d *DropTarget[T]) Painter(s *state.UIState) core.Painter {
	return dropPainter{highlight: d.Highlight}
}

type dropPainter struct {
	highlight color.RGBA
}

func (p dropPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	if !core.StateAs[DropTargetState](ctx.State()).Hovered {
		return
	}
	c.DrawRect(math32.RectFromSize(ctx.Size()), paint.StrokePaint(p.highlight, 2))
}
