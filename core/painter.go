// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"loomui.org/core/animate"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
	"loomui.org/core/tree"
)

// Painter is the drawing intent of an element. Painters run on the
// render worker: they must only read the state snapshot in ctx.
type Painter interface {
	Paint(ctx *PaintCtx, c paint.Canvas)
}

// PainterFunc is a [Painter] implemented by a function.
type PainterFunc func(ctx *PaintCtx, c paint.Canvas)

func (f PainterFunc) Paint(ctx *PaintCtx, c paint.Canvas) { f(ctx, c) }

// Mounter is implemented by painters that want to know when their
// element's snapshot is first installed on the render worker.
type Mounter interface {
	Mounted(ctx *RenderCtx)
}

// AnimatedPainter is implemented by painters that handle painter
// animation events. It returns the new state snapshot.
type AnimatedPainter interface {
	AnimationEvent(ev animate.Event, state any) any
}

// PaintCtx is passed to [Painter.Paint]. The canvas is already
// translated to the element's origin.
type PaintCtx struct {
	node *tree.Node[*PainterElement]
}

// NewPaintCtx returns a context for painting the given node.
func NewPaintCtx(n *tree.Node[*PainterElement]) *PaintCtx {
	return &PaintCtx{node: n}
}

// ID returns the id of the element being painted.
func (c *PaintCtx) ID() element.ID { return c.node.ID }

// State returns the state snapshot of the element.
func (c *PaintCtx) State() any { return c.node.Value.State }

// LocalBounds returns the bounds relative to the parent.
func (c *PaintCtx) LocalBounds() math32.Rect { return c.node.LocalBounds }

// GlobalBounds returns the window-relative bounds.
func (c *PaintCtx) GlobalBounds() math32.Rect { return c.node.GlobalBounds }

// Size returns the size of the element.
func (c *PaintCtx) Size() math32.Vector2 { return c.node.LocalBounds.Size }

// RenderCtx is passed to [Mounter.Mounted].
type RenderCtx struct {
	id       element.ID
	state    any
	Requests []animate.Request
}

// NewRenderCtx returns a render context for the given element.
func NewRenderCtx(id element.ID, state any) *RenderCtx {
	return &RenderCtx{id: id, state: state}
}

// ID returns the id of the mounted element.
func (c *RenderCtx) ID() element.ID { return c.id }

// State returns the state snapshot of the mounted element.
func (c *RenderCtx) State() any { return c.state }

// RequestAnimation requests a painter animation for the element.
func (c *RenderCtx) RequestAnimation(id animate.ID, d time.Duration) {
	c.Requests = append(c.Requests, animate.Request{Kind: animate.Painter, ID: id, Duration: d})
}

// BuildPainterTree returns the painter tree of the sub-tree of t rooted
// at from: same ids, same structure and bounds, and for each element its
// [Widget.Painter] with a clone of its state.
func BuildPainterTree(t *WidgetTree, from element.ID, s *state.UIState) *PainterTree {
	pt := tree.New[*PainterElement]()
	t.WalkDownFrom(from, func(n *tree.Node[*WidgetElement]) bool {
		pt.AddNodeWithID(n.ID, &tree.Node[*PainterElement]{
			ID:           n.ID,
			Value:        newPainterElement(n.Value, n.Value.Widget.Painter(s)),
			LocalBounds:  n.LocalBounds,
			GlobalBounds: n.GlobalBounds,
		})
		if n.ID != from {
			p, _ := t.FindParent(n.ID)
			pt.AddChild(p, n.ID)
		}
		return tree.Continue
	})
	pt.SetRoot(from)
	return pt
}

// PainterSnapshot returns a fresh painter element for one widget element,
// used to update a single node of a painter tree in place.
func PainterSnapshot(t *WidgetTree, id element.ID, s *state.UIState) *PainterElement {
	we := t.Node(id).Value
	return newPainterElement(we, we.Widget.Painter(s))
}

// PaintTree paints every node of t in pre-order, translating the canvas
// to each node's local origin. Parents paint before their children.
func PaintTree(t *PainterTree, c paint.Canvas) {
	if t.RootID() == 0 {
		return
	}
	paintNode(t, t.Node(t.RootID()), c)
}

func paintNode(t *PainterTree, n *tree.Node[*PainterElement], c paint.Canvas) {
	c.Save()
	c.Translate(n.LocalBounds.Pos)
	if n.Value.Painter != nil {
		n.Value.Painter.Paint(NewPaintCtx(n), c)
	}
	for _, id := range n.Children {
		paintNode(t, t.Node(id), c)
	}
	c.Restore()
}
