// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides the built-in widgets: containers, text,
// buttons, scrolling, drag and drop and animation.
package widgets

import (
	"image/color"

	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
)

// Label displays one line of text, either constant or bound to a
// [state.UIState] value. A binding to an absent value shows nothing.
type Label struct {
	core.WidgetBase
	Text  state.Value
	Font  paint.Font
	Color color.RGBA
}

// LabelState is the measured text of a [Label].
type LabelState struct {
	Text paint.Text
}

// NewLabel returns a label showing v in the default font.
func NewLabel(v state.Value) *Label {
	return &Label{Text: v, Font: paint.DefaultFont(), Color: color.RGBA{A: 255}}
}

// NewText returns a label showing a constant string.
func NewText(s string) *Label {
	return NewLabel(state.ConstString(s))
}

func (l *Label) State(s *state.UIState) any {
	return LabelState{Text: paint.NewText(l.Text.ResolveString(s, nil), l.Font)}
}

func (l *Label) Build(ctx *core.BuildCtx) []core.Widget {
	ctx.SetState(LabelState{Text: paint.NewText(ctx.ResolveString(l.Text), l.Font)})
	return nil
}

func (l *Label) CalculateSize(children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	return core.StateAs[LabelState](ctx.State()).Text.Size, true
}

func (l *Label) Painter(s *state.UIState) core.Painter {
	return labelPainter{color: l.Color}
}

type labelPainter struct {
	color color.RGBA
}

func (p labelPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	st := core.StateAs[LabelState](ctx.State())
	if st.Text.Content == "" {
		return
	}
	c.DrawString(math32.RectFromSize(ctx.Size()), st.Text.Content, st.Text.Font, paint.FillPaint(p.color))
}
