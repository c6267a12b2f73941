// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cmp"
	"maps"
	"slices"

	"loomui.org/core/animate"
	"loomui.org/core/element"
	"loomui.org/core/events"
	"loomui.org/core/math32"
	"loomui.org/core/state"
	"loomui.org/core/system"
	"loomui.org/core/tree"
)

// UserInterface owns the widget tree of one window and drives its build,
// layout, hit-testing and event dispatch.
type UserInterface struct {
	window system.WindowID
	tree   *WidgetTree

	// size is the logical size of the window.
	size math32.Vector2
	dpi  float32

	mousePos  math32.Vector2
	mouseDown []element.ID
	button    events.Buttons
	dragging  bool
	drag      *drag
	dragTree  *WidgetTree
	focused   bool
}

type drag struct {
	source element.ID
	data   any
}

// NewUserInterface returns a user interface for the window with the
// given root widget, physical size and device pixel ratio. The tree is
// not built until [UserInterface.Build].
func NewUserInterface(win system.WindowID, root Widget, size math32.Vector2, dpi float32) *UserInterface {
	if dpi <= 0 {
		dpi = 1
	}
	return &UserInterface{
		window: win,
		tree:   newElementTree(root),
		size:   size.DivScalar(dpi),
		dpi:    dpi,
	}
}

// Window returns the id of the window.
func (ui *UserInterface) Window() system.WindowID { return ui.window }

// Tree returns the widget tree.
func (ui *UserInterface) Tree() *WidgetTree { return ui.tree }

// Size returns the logical size of the window.
func (ui *UserInterface) Size() math32.Vector2 { return ui.size }

// DevicePixelRatio returns the ratio of physical to logical pixels.
func (ui *UserInterface) DevicePixelRatio() float32 { return ui.dpi }

// Focused returns whether the window has keyboard focus.
func (ui *UserInterface) Focused() bool { return ui.focused }

// MousePosition returns the last logical pointer position.
func (ui *UserInterface) MousePosition() math32.Vector2 { return ui.mousePos }

// Dragging returns whether a drag sequence is in progress.
func (ui *UserInterface) Dragging() bool { return ui.dragging }

// Build builds the whole tree from the root and lays it out.
func (ui *UserInterface) Build(s *state.UIState) BuildResult {
	var br BuildResult
	buildFrom(ui.tree, ui.tree.RootID(), s, &br)
	ui.Layout(s)
	return br
}

// Find returns the first element in pre-order whose widget satisfies fn.
func (ui *UserInterface) Find(fn func(w Widget) bool) (element.ID, bool) {
	var found element.ID
	ui.tree.WalkDown(func(n *tree.Node[*WidgetElement]) bool {
		if found != 0 {
			return tree.Break
		}
		if fn(n.Value.Widget) {
			found = n.ID
			return tree.Break
		}
		return tree.Continue
	})
	return found, found != 0
}

// FindAll returns every element in pre-order whose widget satisfies fn.
func (ui *UserInterface) FindAll(fn func(w Widget) bool) []element.ID {
	var ids []element.ID
	ui.tree.WalkDown(func(n *tree.Node[*WidgetElement]) bool {
		if fn(n.Value.Widget) {
			ids = append(ids, n.ID)
		}
		return tree.Continue
	})
	return ids
}

// FindWidget returns the first element whose widget is a W.
func FindWidget[W Widget](ui *UserInterface) (element.ID, W, bool) {
	id, ok := ui.Find(func(w Widget) bool {
		_, ok := w.(W)
		return ok
	})
	if !ok {
		var zero W
		return 0, zero, false
	}
	return id, ui.tree.Node(id).Value.Widget.(W), true
}

// State returns the state of an element.
func (ui *UserInterface) State(id element.ID) any {
	return ui.tree.Node(id).Value.State
}

// EventResponse is what routing one event produced: the state changes
// and animation requests the handlers asked for, and window changes.
type EventResponse struct {
	Window system.WindowID

	// Resize is the new logical size, if the window was resized.
	Resize *math32.Vector2

	// Close is set when the user asked to close the window.
	Close bool

	UpdateState       map[element.ID][]Mutator
	AnimationRequests map[element.ID][]animate.Request

	// DragWidget is the preview of a drag that started.
	DragWidget Widget
	DragEnded  bool

	Messages []Message
}

// Empty returns whether the response requires no work.
func (r *EventResponse) Empty() bool {
	return r.Resize == nil && !r.Close && len(r.UpdateState) == 0 && len(r.AnimationRequests) == 0 &&
		r.DragWidget == nil && !r.DragEnded && len(r.Messages) == 0
}

// EventResolution is what applying an [EventResponse] or a mutation
// sweep changed in the widget tree, for forwarding to the render worker.
type EventResolution struct {
	Window system.WindowID
	Resize *math32.Vector2

	// NewBounds holds the bounds of every re-laid-out element.
	NewBounds map[element.ID]Bounds
	Rebuilds  []Rebuild

	// Repaint lists elements whose painter snapshot must be regenerated
	// without a structural change.
	Repaint []element.ID

	DragWidgetTree *WidgetTree
	DragEnded      bool

	// Build records the bindings and animation requests of the rebuilds.
	Build BuildResult
}

// Empty returns whether nothing changed.
func (r *EventResolution) Empty() bool {
	return r.Resize == nil && len(r.NewBounds) == 0 && len(r.Rebuilds) == 0 && len(r.Repaint) == 0 &&
		r.DragWidgetTree == nil && !r.DragEnded
}

func (r *EventResolution) addBounds(b map[element.ID]Bounds) {
	if r.NewBounds == nil {
		r.NewBounds = map[element.ID]Bounds{}
	}
	maps.Copy(r.NewBounds, b)
}

func (r *EventResolution) rebuild(ui *UserInterface, id element.ID, s *state.UIState) {
	rb, br, b := ui.Rebuild(id, s)
	r.Rebuilds = append(r.Rebuilds, rb)
	r.Build.merge(br)
	r.addBounds(b)
}

// byDepth sorts ids so that ancestors come before their descendants.
func (ui *UserInterface) byDepth(ids []element.ID) []element.ID {
	depth := make(map[element.ID]int, len(ids))
	for _, id := range ids {
		depth[id] = ui.tree.Depth(id)
	}
	slices.SortFunc(ids, func(a, b element.ID) int {
		return cmp.Or(cmp.Compare(depth[a], depth[b]), cmp.Compare(a, b))
	})
	return ids
}

// ApplyState applies the queued mutators of each element in order and
// rebuilds the element with its new state. Elements are handled
// ancestors first, and elements removed by an earlier rebuild are
// skipped.
func (ui *UserInterface) ApplyState(updates map[element.ID][]Mutator, s *state.UIState) EventResolution {
	res := EventResolution{Window: ui.window}
	var ids []element.ID
	for id := range updates {
		if ui.tree.Has(id) {
			ids = append(ids, id)
		}
	}
	for _, id := range ui.byDepth(ids) {
		n, ok := ui.tree.Get(id)
		if !ok {
			continue
		}
		for _, m := range updates[id] {
			n.Value.State = m(n.Value.State)
		}
		res.rebuild(ui, id, s)
	}
	return res
}

// HandleMutations reacts to the bindings that changed this frame: each
// affected element is asked what its bindings require, and is rebuilt,
// re-laid out or repainted accordingly. An element is rebuilt at most
// once however many of its bindings changed.
func (ui *UserInterface) HandleMutations(s *state.UIState) EventResolution {
	res := EventResolution{Window: ui.window}
	actions := map[element.ID]Actions{}
	for _, u := range s.Updates() {
		n, ok := ui.tree.Get(u.ID)
		if !ok {
			continue
		}
		actions[u.ID] = max(actions[u.ID], n.Value.Widget.BindingChanged(u.Name))
	}
	if len(actions) == 0 {
		return res
	}
	for _, id := range ui.byDepth(slices.Collect(maps.Keys(actions))) {
		if !ui.tree.Has(id) {
			continue
		}
		switch actions[id] {
		case NeedsBuild:
			res.rebuild(ui, id, s)
		case NeedsLayout:
			from, ok := ui.tree.FindParent(id)
			if !ok {
				ui.Layout(s)
				from = ui.tree.RootID()
			} else {
				ui.layoutFrom(from, s)
			}
			res.addBounds(BoundsOf(ui.tree, from))
			res.Repaint = append(res.Repaint, id)
		case NeedsPaint:
			res.Repaint = append(res.Repaint, id)
		}
	}
	return res
}

// Resolve applies an event response to the tree: new states are applied
// and rebuilt, a resize lays the whole tree out again, and a new drag
// preview is built.
func (ui *UserInterface) Resolve(resp EventResponse, s *state.UIState) EventResolution {
	res := EventResolution{Window: ui.window}
	if len(resp.UpdateState) > 0 {
		res = ui.ApplyState(resp.UpdateState, s)
	}
	if resp.Resize != nil {
		res.Resize = resp.Resize
		ui.Layout(s)
		res.addBounds(BoundsOf(ui.tree, ui.tree.RootID()))
	}
	if resp.DragWidget != nil {
		ui.clearDragTree(s)
		ui.dragTree = newElementTree(resp.DragWidget)
		buildFrom(ui.dragTree, ui.dragTree.RootID(), s, &res.Build)
		sz := (&SizeCtx{tree: ui.dragTree, ui: s}).MustPreferredSize(ui.dragTree.RootID(), math32.Loose(ui.size))
		layoutTree(ui.dragTree, math32.RectFromSize(sz), s)
		res.DragWidgetTree = ui.dragTree
	}
	if resp.DragEnded {
		ui.clearDragTree(s)
		res.DragEnded = true
	}
	return res
}

// DragTree returns the widget tree of the current drag preview.
func (ui *UserInterface) DragTree() (*WidgetTree, bool) {
	return ui.dragTree, ui.dragTree != nil
}

func (ui *UserInterface) clearDragTree(s *state.UIState) {
	if ui.dragTree == nil {
		return
	}
	s.Unbind(ui.dragTree.IDs()...)
	ui.dragTree = nil
}
