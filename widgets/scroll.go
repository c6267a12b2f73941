// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/events"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
)

// DefaultScrollSpeed is the number of logical units a [Scrollable]
// moves per unit of wheel delta.
const DefaultScrollSpeed = 20

// Scrollable shows a viewport onto its child, which is laid out at its
// natural height and moved by wheel events.
type Scrollable struct {
	core.WidgetBase
	Child core.Widget
	Speed float32
}

// ViewportState is the state of a [Scrollable]: the offset of the
// content relative to the viewport, which is never positive.
type ViewportState struct {
	Offset math32.Vector2
}

// NewScrollable returns a scrollable viewport onto child.
func NewScrollable(child core.Widget) *Scrollable {
	return &Scrollable{Child: child, Speed: DefaultScrollSpeed}
}

func (sc *Scrollable) State(s *state.UIState) any { return ViewportState{} }

func (sc *Scrollable) Build(ctx *core.BuildCtx) []core.Widget {
	return single(sc.Child)
}

func (sc *Scrollable) InterceptMouseEvents() bool { return true }

func (sc *Scrollable) Layout(s *state.UIState, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	if len(children) == 0 {
		return
	}
	st := core.StateAs[ViewportState](ctx.State())
	content, ok := ctx.PreferredSize(children[0], contentConstraints(size))
	if !ok {
		content = size
	}
	content = content.Max(size)
	ctx.SetChildBounds(children[0], math32.Rect{Pos: st.Offset, Size: content})
}

// contentConstraints leave the content free to be as tall as it wants
// but no wider than the viewport.
func contentConstraints(size math32.Vector2) math32.Constraints {
	c := math32.Loose(size)
	c.MaxHeight = math32.None
	return c
}

// ClampOffset limits an offset so that the content of the given size
// always covers the viewport.
func ClampOffset(off, viewport, content math32.Vector2) math32.Vector2 {
	lo := viewport.Sub(content).Min(math32.Vector2{})
	return math32.Vec2(math32.Clamp(off.X, lo.X, 0), math32.Clamp(off.Y, lo.Y, 0))
}

func (sc *Scrollable) MouseEvent(s *state.UIState, ctx *core.EventCtx, msgs *core.MessageCtx) {
	ev := ctx.Event()
	if ev.Type != events.Scroll || len(ctx.Children()) == 0 {
		return
	}
	content, ok := ctx.ChildBounds(ctx.Children()[0])
	if !ok {
		return
	}
	delta := ev.Delta.MulScalar(sc.Speed)
	viewport := ctx.Size()
	ctx.SetState(core.MutatorOf(func(st ViewportState) ViewportState {
		st.Offset = ClampOffset(st.Offset.Add(delta), viewport, content.Size)
		return st
	}))
}

func (sc *Scrollable) Painter(s *state.UIState) core.Painter {
	return clipPainter{}
}

// clipPainter clips the element's descendants to its bounds.
type clipPainter struct{}

func (clipPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	c.ClipRect(math32.RectFromSize(ctx.Size()))
}
