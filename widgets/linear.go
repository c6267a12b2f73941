// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/state"
)

// Directions are the main axes of linear layouts.
type Directions int32

const (
	// Horizontal lays children out left to right.
	Horizontal Directions = iota

	// Vertical lays children out top to bottom.
	Vertical
)

// main returns the component of v along d, and cross the other one.
func (d Directions) main(v math32.Vector2) float32 {
	if d == Horizontal {
		return v.X
	}
	return v.Y
}

func (d Directions) cross(v math32.Vector2) float32 {
	if d == Horizontal {
		return v.Y
	}
	return v.X
}

func (d Directions) vec(main, cross float32) math32.Vector2 {
	if d == Horizontal {
		return math32.Vec2(main, cross)
	}
	return math32.Vec2(cross, main)
}

// unboundedMain drops the maxima along the main axis, where children are
// free to report their natural extent.
func (d Directions) unboundedMain(c math32.Constraints) math32.Constraints {
	if d == Horizontal {
		c.MinWidth, c.MaxWidth = math32.None, math32.None
	} else {
		c.MinHeight, c.MaxHeight = math32.None, math32.None
	}
	return c
}

// linearSize returns the size of children laid end to end along d.
// It returns false if any child stretches along the main axis.
func linearSize(d Directions, spacing float32, children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	var main, cross float32
	cc := d.unboundedMain(c)
	cc.MinWidth, cc.MinHeight = math32.None, math32.None
	for i, ch := range children {
		sz, ok := ctx.PreferredSize(ch, cc)
		if !ok {
			return math32.Vector2{}, false
		}
		if i > 0 {
			main += spacing
		}
		main += d.main(sz)
		cross = math32.Max(cross, d.cross(sz))
	}
	return c.Constrain(d.vec(main, cross)), true
}

// linearLayout lays children end to end along d. Children with a
// preferred size get it, the others share the remaining space equally
// and take the whole cross extent.
func linearLayout(d Directions, spacing float32, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	if len(children) == 0 {
		return
	}
	cc := d.unboundedMain(math32.Loose(size))
	sizes := make([]math32.Vector2, len(children))
	fixed := make([]bool, len(children))
	used := spacing * float32(len(children)-1)
	stretch := 0
	for i, ch := range children {
		sizes[i], fixed[i] = ctx.PreferredSize(ch, cc)
		if fixed[i] {
			used += d.main(sizes[i])
		} else {
			stretch++
		}
	}
	if stretch > 0 {
		share := math32.Max(d.main(size)-used, 0) / float32(stretch)
		for i := range sizes {
			if !fixed[i] {
				sizes[i] = d.vec(share, d.cross(size))
			}
		}
	}
	pos := float32(0)
	for i, ch := range children {
		ctx.SetChildBounds(ch, math32.Rect{Pos: d.vec(pos, 0), Size: sizes[i]})
		pos += d.main(sizes[i]) + spacing
	}
}

// Row lays its children out left to right.
type Row struct {
	core.WidgetBase
	Children []core.Widget
	Spacing  float32
}

// NewRow returns a row of the given children.
func NewRow(children ...core.Widget) *Row {
	return &Row{Children: children}
}

func (r *Row) Build(ctx *core.BuildCtx) []core.Widget { return r.Children }

func (r *Row) CalculateSize(children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	return linearSize(Horizontal, r.Spacing, children, c, ctx)
}

func (r *Row) Layout(s *state.UIState, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	linearLayout(Horizontal, r.Spacing, ctx, size, children)
}

// Column lays its children out top to bottom.
type Column struct {
	core.WidgetBase
	Children []core.Widget
	Spacing  float32
}

// NewColumn returns a column of the given children.
func NewColumn(children ...core.Widget) *Column {
	return &Column{Children: children}
}

func (c *Column) Build(ctx *core.BuildCtx) []core.Widget { return c.Children }

func (c *Column) CalculateSize(children []element.ID, cs math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	return linearSize(Vertical, c.Spacing, children, cs, ctx)
}

func (c *Column) Layout(s *state.UIState, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	linearLayout(Vertical, c.Spacing, ctx, size, children)
}

// List is a vertical list of Count items made by Item. Items are
// rebuilt whenever the list is.
type List struct {
	core.WidgetBase
	Count int
	Item  func(i int) core.Widget
}

// NewList returns a list of n items.
func NewList(n int, item func(i int) core.Widget) *List {
	return &List{Count: n, Item: item}
}

func (l *List) Build(ctx *core.BuildCtx) []core.Widget {
	items := make([]core.Widget, l.Count)
	for i := range items {
		items[i] = l.Item(i)
	}
	return items
}

func (l *List) CalculateSize(children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	return linearSize(Vertical, 0, children, c, ctx)
}

func (l *List) Layout(s *state.UIState, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	linearLayout(Vertical, 0, ctx, size, children)
}
