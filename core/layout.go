// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/state"
)

// Layout lays out the whole tree: the root gets the logical window size
// and every parent positions its children.
func (ui *UserInterface) Layout(s *state.UIState) {
	layoutTree(ui.tree, math32.RectFromSize(ui.size), s)
}

func layoutTree(t *WidgetTree, root math32.Rect, s *state.UIState) {
	id := t.RootID()
	if id == 0 {
		return
	}
	n := t.Node(id)
	n.LocalBounds = root
	n.GlobalBounds = root
	layoutFrom(t, id, s)
}

func (ui *UserInterface) layoutFrom(id element.ID, s *state.UIState) {
	layoutFrom(ui.tree, id, s)
}

// layoutFrom re-lays out the descendants of id, keeping id's own bounds.
// Global bounds of a child are the parent's global position plus the
// child's local bounds.
func layoutFrom(t *WidgetTree, id element.ID, s *state.UIState) {
	stack := []element.ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.Node(cur)
		if !n.HasChildren() {
			continue
		}
		ctx := newLayoutCtx(t, s, n)
		n.Value.Widget.Layout(s, ctx, n.LocalBounds.Size, n.Children)
		for _, c := range n.Children {
			cn := t.Node(c)
			r := ctx.assigned[c]
			cn.LocalBounds = r
			cn.GlobalBounds = math32.Rect{Pos: n.GlobalBounds.Pos.Add(r.Pos), Size: r.Size}
			stack = append(stack, c)
		}
	}
}

// PreferredSize returns the preferred size of an element of the tree.
func (ui *UserInterface) PreferredSize(id element.ID, c math32.Constraints, s *state.UIState) (math32.Vector2, bool) {
	ctx := &SizeCtx{tree: ui.tree, ui: s}
	return ctx.PreferredSize(id, c)
}
