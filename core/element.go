// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"reflect"

	"github.com/jinzhu/copier"

	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/tree"
)

// WidgetElement is the payload of a widget tree node: the widget and the
// opaque per-element state it created.
type WidgetElement struct {
	Widget Widget

	// State is nil until the first build sets it from [Widget.State].
	State any

	initialized bool
}

// Initialized returns whether State has been set by a first build.
func (we *WidgetElement) Initialized() bool {
	return we.initialized
}

// WidgetTree is the live tree of widget elements of one window.
type WidgetTree = tree.Tree[*WidgetElement]

// PainterElement is the payload of a painter tree node: the drawing
// intent of a widget and a snapshot of its state, cloned so that the
// render worker never reads live widget state.
type PainterElement struct {
	Painter Painter
	State   any
}

// PainterTree is the id-aligned snapshot of a widget tree that the
// render worker paints.
type PainterTree = tree.Tree[*PainterElement]

// Bounds are the window-relative and parent-relative bounds of an element.
type Bounds struct {
	Global math32.Rect
	Local  math32.Rect
}

// Cloner can be implemented by state types that need custom cloning for
// painter snapshots.
type Cloner interface {
	Clone() any
}

// CloneState returns a deep copy of a widget state value. Scalars are
// returned as is; structs, slices, maps and pointers are deep-copied.
func CloneState(v any) any {
	if v == nil {
		return nil
	}
	if c, ok := v.(Cloner); ok {
		return c.Clone()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map:
		dst := reflect.New(rv.Type())
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			panic("core: cloning state: " + err.Error())
		}
		return dst.Elem().Interface()
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		dst := reflect.New(rv.Elem().Type())
		if err := copier.CopyWithOption(dst.Interface(), rv.Elem().Interface(), copier.Option{DeepCopy: true}); err != nil {
			panic("core: cloning state: " + err.Error())
		}
		return dst.Interface()
	}
	return v
}

// newPainterElement snapshots the painter and state of a widget element.
func newPainterElement(we *WidgetElement, p Painter) *PainterElement {
	return &PainterElement{Painter: p, State: CloneState(we.State)}
}

// BoundsOf returns the bounds of every node of the sub-tree rooted at id.
func BoundsOf[T any](t *tree.Tree[T], id element.ID) map[element.ID]Bounds {
	out := map[element.ID]Bounds{}
	t.WalkDownFrom(id, func(n *tree.Node[T]) bool {
		out[n.ID] = Bounds{Global: n.GlobalBounds, Local: n.LocalBounds}
		return tree.Continue
	})
	return out
}

// ApplyBounds sets the bounds of the nodes of t that are present in b.
func ApplyBounds[T any](t *tree.Tree[T], b map[element.ID]Bounds) {
	for id, bb := range b {
		if n, ok := t.Get(id); ok {
			n.GlobalBounds = bb.Global
			n.LocalBounds = bb.Local
		}
	}
}
