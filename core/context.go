// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"slices"
	"time"

	"loomui.org/core/animate"
	"loomui.org/core/element"
	"loomui.org/core/events"
	"loomui.org/core/math32"
	"loomui.org/core/state"
	"loomui.org/core/tree"
)

// ElementRequest is an animation request made by an element.
type ElementRequest struct {
	Element element.ID
	Request animate.Request
}

// BuildResult collects what a build pass recorded besides the tree.
type BuildResult struct {
	Animations []ElementRequest
	Bindings   []state.Update

	// Built lists the elements whose Build was called, in call order.
	Built []element.ID
}

func (br *BuildResult) merge(o BuildResult) {
	br.Animations = append(br.Animations, o.Animations...)
	br.Bindings = append(br.Bindings, o.Bindings...)
	br.Built = append(br.Built, o.Built...)
}

// BuildCtx is passed to [Widget.Build].
type BuildCtx struct {
	id     element.ID
	ui     *state.UIState
	elem   *WidgetElement
	result *BuildResult
}

// ID returns the id of the element being built.
func (c *BuildCtx) ID() element.ID { return c.id }

// UIState returns the value store.
func (c *BuildCtx) UIState() *state.UIState { return c.ui }

// State returns the current state of the element being built.
func (c *BuildCtx) State() any { return c.elem.State }

// SetState replaces the state of the element being built. It is meant
// for state derived from bindings, such as measured text, and takes
// effect immediately.
func (c *BuildCtx) SetState(v any) { c.elem.State = v }

// Bind records that the element depends on name, so that it is notified
// through [Widget.BindingChanged] when name changes.
func (c *BuildCtx) Bind(name string) {
	c.ui.BindOne(c.id, name)
	c.result.Bindings = append(c.result.Bindings, state.Update{Name: name, ID: c.id})
}

// Resolve resolves v, binding the element to it if it is a binding.
func (c *BuildCtx) Resolve(v state.Value) (state.Var, bool) {
	return v.Resolve(c.ui, c)
}

// ResolveString is like [BuildCtx.Resolve], returning the display string.
func (c *BuildCtx) ResolveString(v state.Value) string {
	return v.ResolveString(c.ui, c)
}

// RequestWidgetAnimation requests a widget animation for the element:
// its events are delivered to [Widget.AnimationEvent].
func (c *BuildCtx) RequestWidgetAnimation(id animate.ID, d time.Duration) {
	c.result.Animations = append(c.result.Animations, ElementRequest{c.id, animate.Request{Kind: animate.Widget, ID: id, Duration: d}})
}

// RequestPainterAnimation requests a painter animation for the element:
// its events are delivered to the element's painter on the render worker.
func (c *BuildCtx) RequestPainterAnimation(id animate.ID, d time.Duration) {
	c.result.Animations = append(c.result.Animations, ElementRequest{c.id, animate.Request{Kind: animate.Painter, ID: id, Duration: d}})
}

// SizeCtx is passed to [Widget.CalculateSize] so that a widget can query
// its own state and the preferred sizes of its children.
type SizeCtx struct {
	tree *WidgetTree
	ui   *state.UIState
	id   element.ID
}

// ID returns the id of the element being sized or laid out.
func (c *SizeCtx) ID() element.ID { return c.id }

// UIState returns the value store.
func (c *SizeCtx) UIState() *state.UIState { return c.ui }

// State returns the state of the element being sized or laid out.
func (c *SizeCtx) State() any {
	return c.tree.Node(c.id).Value.State
}

// StateOf returns the state of another element.
func (c *SizeCtx) StateOf(id element.ID) any {
	return c.tree.Node(id).Value.State
}

// PreferredSize returns the preferred size of the element under the
// given constraints, clamped into them. It returns false when the
// element wants whatever its parent gives it.
func (c *SizeCtx) PreferredSize(id element.ID, cs math32.Constraints) (math32.Vector2, bool) {
	n := c.tree.Node(id)
	sub := &SizeCtx{tree: c.tree, ui: c.ui, id: id}
	sz, ok := n.Value.Widget.CalculateSize(n.Children, cs, sub)
	if !ok {
		return math32.Vector2{}, false
	}
	return cs.Constrain(sz), true
}

// MustPreferredSize is like [SizeCtx.PreferredSize], but an element
// without a preferred size gets the maximum of the constraints. It
// panics when there is no maximum either: the caller required a size.
func (c *SizeCtx) MustPreferredSize(id element.ID, cs math32.Constraints) math32.Vector2 {
	if sz, ok := c.PreferredSize(id, cs); ok {
		return sz
	}
	if mx, ok := cs.MaxSize(); ok {
		return mx
	}
	panic(fmt.Sprintf("core: element %v has no preferred size under unbounded constraints %v", id, cs))
}

// LayoutCtx is passed to [Widget.Layout] to position children.
type LayoutCtx struct {
	SizeCtx

	size     math32.Vector2
	assigned map[element.ID]math32.Rect
}

func newLayoutCtx(t *WidgetTree, s *state.UIState, n *tree.Node[*WidgetElement]) *LayoutCtx {
	return &LayoutCtx{
		SizeCtx:  SizeCtx{tree: t, ui: s, id: n.ID},
		size:     n.LocalBounds.Size,
		assigned: make(map[element.ID]math32.Rect, len(n.Children)),
	}
}

func (c *LayoutCtx) mustBeChild(child element.ID) {
	if p, ok := c.tree.FindParent(child); !ok || p != c.id {
		panic(fmt.Sprintf("core: %v is not a child of %v", child, c.id))
	}
}

// SetChildBounds sets the bounds of child relative to the element.
func (c *LayoutCtx) SetChildBounds(child element.ID, r math32.Rect) {
	c.mustBeChild(child)
	c.assigned[child] = r
}

// SetChildPosition positions child relative to the element, keeping the
// size assigned earlier in this pass or, failing that, its preferred
// size within the element's size.
func (c *LayoutCtx) SetChildPosition(child element.ID, pos math32.Vector2) {
	c.mustBeChild(child)
	r, ok := c.assigned[child]
	if !ok {
		r.Size = c.MustPreferredSize(child, math32.Loose(c.size))
	}
	r.Pos = pos
	c.assigned[child] = r
}

// ChildBounds returns the bounds assigned to child in this pass.
func (c *LayoutCtx) ChildBounds(child element.ID) (math32.Rect, bool) {
	r, ok := c.assigned[child]
	return r, ok
}

// MessageCtx lets an event handler dispatch application messages.
type MessageCtx struct {
	resp *EventResponse
}

// Dispatch sends msg to the application delegate.
func (c *MessageCtx) Dispatch(msg Message) {
	c.resp.Messages = append(c.resp.Messages, msg)
}

// EventCtx is passed to [Widget.MouseEvent] and [Widget.AnimationEvent].
type EventCtx struct {
	ui   *UserInterface
	node *tree.Node[*WidgetElement]
	resp *EventResponse

	event     events.Mouse
	animation animate.Event
	animating bool
}

// ID returns the id of the receiving element.
func (c *EventCtx) ID() element.ID { return c.node.ID }

// Event returns the pointer event, relative to the element.
func (c *EventCtx) Event() events.Mouse { return c.event }

// Animation returns the animation event, if this is an animation dispatch.
func (c *EventCtx) Animation() (animate.Event, bool) { return c.animation, c.animating }

// State returns the state of the element as of the start of the frame;
// pending mutators are not applied.
func (c *EventCtx) State() any { return c.node.Value.State }

// LocalBounds returns the bounds of the element relative to its parent.
func (c *EventCtx) LocalBounds() math32.Rect { return c.node.LocalBounds }

// GlobalBounds returns the window-relative bounds of the element.
func (c *EventCtx) GlobalBounds() math32.Rect { return c.node.GlobalBounds }

// Size returns the size of the element.
func (c *EventCtx) Size() math32.Vector2 { return c.node.LocalBounds.Size }

// Children returns the ids of the element's children.
func (c *EventCtx) Children() []element.ID { return c.node.Children }

// ChildBounds returns the bounds of a child relative to the element.
func (c *EventCtx) ChildBounds(child element.ID) (math32.Rect, bool) {
	n, ok := c.ui.tree.Get(child)
	if !ok {
		return math32.Rect{}, false
	}
	return n.LocalBounds, true
}

// Contains returns whether the event position lies inside the element.
func (c *EventCtx) Contains() bool {
	return math32.RectFromSize(c.node.LocalBounds.Size).Contains(c.event.Pos)
}

// SetState queues a mutator of the element's state. Mutators queued in
// one frame are applied in order, and the element is then rebuilt.
func (c *EventCtx) SetState(m Mutator) {
	if c.resp.UpdateState == nil {
		c.resp.UpdateState = map[element.ID][]Mutator{}
	}
	c.resp.UpdateState[c.node.ID] = append(c.resp.UpdateState[c.node.ID], m)
}

func (c *EventCtx) request(req animate.Request) {
	if c.resp.AnimationRequests == nil {
		c.resp.AnimationRequests = map[element.ID][]animate.Request{}
	}
	c.resp.AnimationRequests[c.node.ID] = append(c.resp.AnimationRequests[c.node.ID], req)
}

// RequestWidgetAnimation requests a widget animation for the element.
func (c *EventCtx) RequestWidgetAnimation(id animate.ID, d time.Duration) {
	c.request(animate.Request{Kind: animate.Widget, ID: id, Duration: d})
}

// RequestPainterAnimation requests a painter animation for the element.
func (c *EventCtx) RequestPainterAnimation(id animate.ID, d time.Duration) {
	c.request(animate.Request{Kind: animate.Painter, ID: id, Duration: d})
}

// HoldsMouse returns whether the element received the MouseDown of the
// current press.
func (c *EventCtx) HoldsMouse() bool {
	return slices.Contains(c.ui.mouseDown, c.node.ID)
}

// StartDrag declares the element as the source of a drag carrying data.
// It only has an effect during a [events.MouseDragStart]. The optional
// preview widget is drawn under the pointer while dragging.
func (c *EventCtx) StartDrag(data any, preview Widget) {
	if c.event.Type != events.MouseDragStart {
		return
	}
	c.ui.drag = &drag{source: c.node.ID, data: data}
	c.resp.DragWidget = preview
}

// DragData returns the data of the drag in progress.
func (c *EventCtx) DragData() (any, bool) {
	if c.ui.drag == nil {
		return nil, false
	}
	return c.ui.drag.data, true
}

// DragSource returns the element that started the drag in progress.
func (c *EventCtx) DragSource() (element.ID, bool) {
	if c.ui.drag == nil {
		return 0, false
	}
	return c.ui.drag.source, true
}
