// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"

	"loomui.org/core/animate"
	"loomui.org/core/element"
	"loomui.org/core/events"
	"loomui.org/core/math32"
	"loomui.org/core/state"
	"loomui.org/core/system"
	"loomui.org/core/tree"
)

// HitTest returns the deepest element without interception whose global
// bounds contain pos, and the intercepting elements containing pos in
// pre-order. Elements are only visited when their bounds contain pos,
// so the intercepting elements are ancestors or overlapping siblings of
// the hit path.
func (ui *UserInterface) HitTest(pos math32.Vector2) (hit element.ID, ok bool, intercepted []element.ID) {
	ui.tree.WalkDown(func(n *tree.Node[*WidgetElement]) bool {
		if !n.GlobalBounds.Contains(pos) {
			return tree.Break
		}
		if n.Value.Widget.InterceptMouseEvents() {
			intercepted = append(intercepted, n.ID)
		} else {
			hit, ok = n.ID, true
		}
		return tree.Continue
	})
	return
}

// hitPath returns the recipients of an event at pos: the intercepting
// elements followed by the hit element.
func (ui *UserInterface) hitPath(pos math32.Vector2) []element.ID {
	hit, ok, path := ui.HitTest(pos)
	if ok {
		path = append(path, hit)
	}
	return path
}

// HandleEvent routes one raw window event. Positions are converted to
// logical coordinates, the pointer kind is synthesised from the mouse
// down and drag status, and each recipient's [Widget.MouseEvent] is
// called with the event relative to the recipient.
func (ui *UserInterface) HandleEvent(ev system.Event, s *state.UIState) EventResponse {
	resp := EventResponse{Window: ui.window}
	switch e := ev.(type) {
	case system.CursorMoved:
		ui.mousePos = e.Pos.DivScalar(ui.dpi)
		switch {
		case len(ui.mouseDown) == 0:
			ui.dispatch(events.NewMouse(events.MouseMove, events.NoButton, ui.mousePos), ui.hitPath(ui.mousePos), s, &resp)
		case !ui.dragging:
			ui.dragging = true
			ui.dispatch(events.NewMouse(events.MouseDragStart, ui.button, ui.mousePos), ui.withMouseDown(ui.hitPath(ui.mousePos)), s, &resp)
		default:
			ui.dispatch(events.NewMouse(events.MouseDrag, ui.button, ui.mousePos), ui.withMouseDown(ui.hitPath(ui.mousePos)), s, &resp)
		}
	case system.MouseInput:
		if e.Pressed {
			path := ui.hitPath(ui.mousePos)
			ui.button = e.Button
			ui.dispatch(events.NewMouse(events.MouseDown, e.Button, ui.mousePos), path, s, &resp)
			for _, id := range path {
				if !slices.Contains(ui.mouseDown, id) {
					ui.mouseDown = append(ui.mouseDown, id)
				}
			}
			break
		}
		path := ui.withMouseDown(ui.hitPath(ui.mousePos))
		if ui.dragging {
			ui.dispatch(events.NewMouse(events.MouseDragEnd, e.Button, ui.mousePos), path, s, &resp)
		}
		ui.dispatch(events.NewMouse(events.MouseUp, e.Button, ui.mousePos), path, s, &resp)
		if ui.drag != nil {
			resp.DragEnded = true
		}
		ui.mouseDown = nil
		ui.dragging = false
		ui.drag = nil
		ui.button = events.NoButton
	case system.MouseWheel:
		delta := e.Delta.MulScalar(events.ScrollWheelSpeed)
		ui.dispatch(events.NewScroll(ui.mousePos, delta), ui.hitPath(ui.mousePos), s, &resp)
	case system.Resized:
		ui.size = e.Size.DivScalar(ui.dpi)
		sz := ui.size
		resp.Resize = &sz
	case system.Focused:
		ui.focused = e.Focused
	case system.CloseRequested:
		resp.Close = true
	default:
		slog.Debug("core: unhandled window event", "window", ui.window, "event", ev)
	}
	return resp
}

// withMouseDown appends the elements holding the mouse down that are not
// already in path.
func (ui *UserInterface) withMouseDown(path []element.ID) []element.ID {
	for _, id := range ui.mouseDown {
		if !slices.Contains(path, id) {
			path = append(path, id)
		}
	}
	return path
}

// dispatch delivers ev to each recipient still present in the tree.
func (ui *UserInterface) dispatch(ev events.Mouse, recipients []element.ID, s *state.UIState, resp *EventResponse) {
	msgs := &MessageCtx{resp: resp}
	for _, id := range recipients {
		n, ok := ui.tree.Get(id)
		if !ok {
			continue
		}
		ctx := &EventCtx{ui: ui, node: n, resp: resp, event: ev.Local(n.GlobalBounds.Pos)}
		n.Value.Widget.MouseEvent(s, ctx, msgs)
	}
}

// DispatchAnimation delivers a widget animation event to an element.
// Events for elements no longer in the tree are dropped.
func (ui *UserInterface) DispatchAnimation(id element.ID, ev animate.Event, s *state.UIState) EventResponse {
	resp := EventResponse{Window: ui.window}
	n, ok := ui.tree.Get(id)
	if !ok {
		return resp
	}
	ctx := &EventCtx{ui: ui, node: n, resp: &resp, animation: ev, animating: true}
	n.Value.Widget.AnimationEvent(ctx, s)
	return resp
}
