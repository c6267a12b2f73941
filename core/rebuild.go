// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"loomui.org/core/element"
	"loomui.org/core/state"
	"loomui.org/core/tree"
)

// Rebuild is a freshly built sub-tree that replaces the sub-tree of the
// element with the same id, to be spliced back under Parent.
type Rebuild struct {
	Parent    element.ID
	HasParent bool
	ID        element.ID
	Tree      *WidgetTree

	// Removed are the descendants discarded by the rebuild.
	Removed []element.ID
}

// newElementTree returns a tree holding a single unbuilt element for w.
func newElementTree(w Widget) *WidgetTree {
	t := tree.New[*WidgetElement]()
	t.AddNode(&WidgetElement{Widget: w})
	return t
}

// buildFrom builds the sub-tree rooted at id depth-first: the element's
// state is seeded if missing, its Build is called, and every returned
// widget gets a fresh id before any of them is built.
func buildFrom(t *WidgetTree, id element.ID, s *state.UIState, br *BuildResult) {
	stack := []element.ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.Node(cur)
		we := n.Value
		if !we.initialized {
			we.State = we.Widget.State(s)
			we.initialized = true
		}
		ctx := &BuildCtx{id: cur, ui: s, elem: we, result: br}
		kids := we.Widget.Build(ctx)
		br.Built = append(br.Built, cur)
		ids := make([]element.ID, len(kids))
		for i, k := range kids {
			ids[i] = element.NewID()
			t.AddNodeWithID(ids[i], &tree.Node[*WidgetElement]{Value: &WidgetElement{Widget: k}})
			t.AddChild(cur, ids[i])
		}
		for i := len(ids) - 1; i >= 0; i-- {
			stack = append(stack, ids[i])
		}
	}
}

// RebuildElement removes the sub-tree rooted at id, unbinding every
// removed element, and builds it again from the same element: the id,
// the widget, the state and the bounds are kept, all descendants are new.
// The tree lacks the sub-tree until [UserInterface.MergeRebuild].
func (ui *UserInterface) RebuildElement(id element.ID, s *state.UIState) (Rebuild, BuildResult) {
	old := ui.tree.Node(id)
	r := Rebuild{ID: id}
	r.Parent, r.HasParent = ui.tree.FindParent(id)
	removed := ui.tree.RemoveNode(id)
	s.Unbind(removed...)
	r.Removed = removed[1:]

	r.Tree = tree.New[*WidgetElement]()
	r.Tree.AddNodeWithID(id, &tree.Node[*WidgetElement]{
		Value:        old.Value,
		LocalBounds:  old.LocalBounds,
		GlobalBounds: old.GlobalBounds,
	})
	var br BuildResult
	buildFrom(r.Tree, id, s, &br)
	return r, br
}

// MergeRebuild splices r back into the tree and lays out what it
// affects: the parent's sub-tree, or the whole tree when r replaced the
// root. It returns the new bounds of every re-laid-out element.
func (ui *UserInterface) MergeRebuild(r Rebuild, s *state.UIState) map[element.ID]Bounds {
	if r.HasParent {
		ui.tree.MergeSubtree(r.Parent, r.Tree)
		ui.layoutFrom(r.Parent, s)
		return BoundsOf(ui.tree, r.Parent)
	}
	ui.tree.ReplaceRoot(r.Tree)
	ui.Layout(s)
	return BoundsOf(ui.tree, ui.tree.RootID())
}

// Rebuild rebuilds the element and merges it back in one step.
func (ui *UserInterface) Rebuild(id element.ID, s *state.UIState) (Rebuild, BuildResult, map[element.ID]Bounds) {
	r, br := ui.RebuildElement(id, s)
	return r, br, ui.MergeRebuild(r, s)
}
