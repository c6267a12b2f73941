// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"

	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
)

// Insets are the widths of the four sides of a box.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// All returns insets of d on every side.
func All(d float32) Insets {
	return Insets{d, d, d, d}
}

// Symmetric returns insets of h on the left and right and v on the
// top and bottom.
func Symmetric(h, v float32) Insets {
	return Insets{v, h, v, h}
}

func (in Insets) size() math32.Vector2 {
	return math32.Vec2(in.Left+in.Right, in.Top+in.Bottom)
}

// Padding surrounds its child with empty space.
type Padding struct {
	core.WidgetBase
	Insets Insets
	Child  core.Widget
}

// NewPadding returns a padding of in around child.
func NewPadding(in Insets, child core.Widget) *Padding {
	return &Padding{Insets: in, Child: child}
}

func (p *Padding) Build(ctx *core.BuildCtx) []core.Widget {
	return single(p.Child)
}

func (p *Padding) CalculateSize(children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	return insetSize(p.Insets, children, c, ctx)
}

func (p *Padding) Layout(s *state.UIState, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	insetLayout(p.Insets, ctx, size, children)
}

func single(w core.Widget) []core.Widget {
	if w == nil {
		return nil
	}
	return []core.Widget{w}
}

// insetSize is the preferred size of the only child plus the insets.
func insetSize(in Insets, children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	extra := in.size()
	if len(children) == 0 {
		return c.Constrain(extra), true
	}
	sz, ok := ctx.PreferredSize(children[0], c.Shrunk(extra.X, extra.Y))
	if !ok {
		return math32.Vector2{}, false
	}
	return c.Constrain(sz.Add(extra)), true
}

// insetLayout places the only child inside the insets, at its
// preferred size or stretched over the inner area.
func insetLayout(in Insets, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	if len(children) == 0 {
		return
	}
	inner := size.Sub(in.size()).Max(math32.Vector2{})
	sz, ok := ctx.PreferredSize(children[0], math32.Loose(inner))
	if !ok {
		sz = inner
	}
	ctx.SetChildBounds(children[0], math32.Rect{Pos: math32.Vec2(in.Left, in.Top), Size: sz})
}

// SizedBox forces a size on its child. A zero width or height takes the
// maximum the parent allows, or the child's own extent when unbounded.
type SizedBox struct {
	core.WidgetBase
	Width, Height float32
	Child         core.Widget
	Color         color.RGBA
}

// NewSizedBox returns a box of the given size around child.
func NewSizedBox(width, height float32, child core.Widget) *SizedBox {
	return &SizedBox{Width: width, Height: height, Child: child}
}

func (b *SizedBox) Build(ctx *core.BuildCtx) []core.Widget {
	return single(b.Child)
}

func (b *SizedBox) CalculateSize(children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	var child math32.Vector2
	if len(children) > 0 && (b.Width == 0 || b.Height == 0) {
		child, _ = ctx.PreferredSize(children[0], c)
	}
	w := extent(b.Width, c.MaxWidth, child.X)
	h := extent(b.Height, c.MaxHeight, child.Y)
	return c.Constrain(math32.Vec2(w, h)), true
}

func extent(want float32, mx math32.Bound, child float32) float32 {
	switch {
	case want > 0:
		return want
	case mx.Valid:
		return mx.Value
	}
	return child
}

func (b *SizedBox) Painter(s *state.UIState) core.Painter {
	if b.Color.A == 0 {
		return nil
	}
	return fillPainter{b.Color}
}

type fillPainter struct {
	color color.RGBA
}

func (p fillPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	c.DrawRect(math32.RectFromSize(ctx.Size()), paint.FillPaint(p.color))
}
