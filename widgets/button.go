// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"

	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/events"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
)

// Button is a clickable text button. It dispatches its message when
// the pointer is pressed and released inside it.
type Button struct {
	core.WidgetBase
	Text    string
	Message core.Message

	// Insets are the space around the text.
	Insets Insets
	Color  color.RGBA
}

// ButtonState is the state of a [Button].
type ButtonState struct {
	Pressed bool
}

// NewButton returns a button labeled text dispatching msg.
func NewButton(text string, msg core.Message) *Button {
	return &Button{
		Text:    text,
		Message: msg,
		Insets:  Symmetric(8, 4),
		Color:   color.RGBA{0xd0, 0xd0, 0xd8, 0xff},
	}
}

func (b *Button) State(s *state.UIState) any { return ButtonState{} }

func (b *Button) Build(ctx *core.BuildCtx) []core.Widget {
	return []core.Widget{NewText(b.Text)}
}

func (b *Button) CalculateSize(children []element.ID, c math32.Constraints, ctx *core.SizeCtx) (math32.Vector2, bool) {
	return insetSize(b.Insets, children, c, ctx)
}

func (b *Button) Layout(s *state.UIState, ctx *core.LayoutCtx, size math32.Vector2, children []element.ID) {
	insetLayout(b.Insets, ctx, size, children)
}

func (b *Button) InterceptMouseEvents() bool { return true }

func (b *Button) MouseEvent(s *state.UIState, ctx *core.EventCtx, msgs *core.MessageCtx) {
	st := core.StateAs[ButtonState](ctx.State())
	switch ctx.Event().Type {
	case events.MouseDown:
		ctx.SetState(core.MutatorOf(func(st ButtonState) ButtonState {
			st.Pressed = true
			return st
		}))
	case events.MouseUp:
		if !st.Pressed {
			return
		}
		if ctx.Contains() {
			msgs.Dispatch(b.Message)
		}
		ctx.SetState(core.MutatorOf(func(st ButtonState) ButtonState {
			st.Pressed = false
			return st
		}))
	}
}

func (b *Button) Painter(s *state.UIState) core.Painter {
	return buttonPainter{color: b.Color}
}

type buttonPainter struct {
	color color.RGBA
}

func (p buttonPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	col := p.color
	if core.StateAs[ButtonState](ctx.State()).Pressed {
		col.R, col.G, col.B = col.R/2, col.G/2, col.B/2
	}
	c.DrawRoundedRect(math32.RectFromSize(ctx.Size()), 4, 4, paint.FillPaint(col))
}
