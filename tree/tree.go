// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides an id-keyed arena tree: nodes live in a map
// keyed by [element.ID] and reference their children by id, so there
// are no pointer cycles between parents and children. It is the
// container for both the widget tree and the painter tree.
package tree

import (
	"fmt"
	"slices"

	"loomui.org/core/element"
	"loomui.org/core/math32"
)

// Node is one node of a [Tree]: a payload, its sorted child ids, and
// its bounds relative to its parent (Local) and to the window (Global).
type Node[T any] struct {
	ID       element.ID
	Value    T
	Children []element.ID

	LocalBounds  math32.Rect
	GlobalBounds math32.Rect
}

// NumChildren returns the number of children.
func (n *Node[T]) NumChildren() int {
	return len(n.Children)
}

// HasChildren returns whether the node has any children.
func (n *Node[T]) HasChildren() bool {
	return len(n.Children) > 0
}

// Tree is a generic id-keyed tree with a single root.
// The zero Tree is not usable; use [New].
type Tree[T any] struct {
	nodes   map[element.ID]*Node[T]
	parents map[element.ID]element.ID
	root    element.ID
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{
		nodes:   map[element.ID]*Node[T]{},
		parents: map[element.ID]element.ID{},
	}
}

// RootID returns the root id, which is zero for an empty tree.
func (t *Tree[T]) RootID() element.ID {
	return t.root
}

// SetRoot makes id the root. The node must be present.
func (t *Tree[T]) SetRoot(id element.ID) {
	t.mustHave(id)
	t.root = id
}

// Len returns the number of nodes.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Has returns whether id is a node of the tree.
func (t *Tree[T]) Has(id element.ID) bool {
	_, ok := t.nodes[id]
	return ok
}

// Get returns the node with the given id.
func (t *Tree[T]) Get(id element.ID) (*Node[T], bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Node returns the node with the given id. It panics if id is not
// in the tree.
func (t *Tree[T]) Node(id element.ID) *Node[T] {
	return t.mustHave(id)
}

func (t *Tree[T]) mustHave(id element.ID) *Node[T] {
	n, ok := t.nodes[id]
	if !ok {
		panic(fmt.Sprintf("tree: node %v not found", id))
	}
	return n
}

// AddNode adds a detached node with a fresh id holding v and returns
// its id. The first node added to an empty tree becomes the root.
func (t *Tree[T]) AddNode(v T) element.ID {
	id := element.NewID()
	t.AddNodeWithID(id, &Node[T]{Value: v})
	return id
}

// AddNodeWithID adds the given node under id. Its children, if any,
// must be added separately or already be present. It panics if id is
// already used. The first node added to an empty tree becomes the root.
func (t *Tree[T]) AddNodeWithID(id element.ID, n *Node[T]) {
	if id == 0 {
		panic("tree: zero id")
	}
	if _, ok := t.nodes[id]; ok {
		panic(fmt.Sprintf("tree: node %v already present", id))
	}
	n.ID = id
	t.nodes[id] = n
	for _, c := range n.Children {
		t.parents[c] = id
	}
	if t.root == 0 {
		t.root = id
	}
}

// AddChild attaches child under parent, keeping the children sorted by
// id. Both must be present; child must not already have a parent and
// must not be an ancestor of parent.
func (t *Tree[T]) AddChild(parent, child element.ID) {
	pn := t.mustHave(parent)
	t.mustHave(child)
	if p, ok := t.parents[child]; ok {
		panic(fmt.Sprintf("tree: child %v already present under %v", child, p))
	}
	if child == t.root || t.IsAncestor(child, parent) {
		panic(fmt.Sprintf("tree: adding %v under %v would create a cycle", child, parent))
	}
	i, _ := slices.BinarySearch(pn.Children, child)
	pn.Children = slices.Insert(pn.Children, i, child)
	t.parents[child] = parent
}

// IsAncestor returns whether a is a strict ancestor of d.
func (t *Tree[T]) IsAncestor(a, d element.ID) bool {
	for {
		p, ok := t.parents[d]
		if !ok {
			return false
		}
		if p == a {
			return true
		}
		d = p
	}
}

// FindParent returns the parent of child, or false for the root and
// for detached nodes.
func (t *Tree[T]) FindParent(child element.ID) (element.ID, bool) {
	p, ok := t.parents[child]
	return p, ok
}

// Depth returns the number of ancestors of id.
func (t *Tree[T]) Depth(id element.ID) int {
	d := 0
	for {
		p, ok := t.parents[id]
		if !ok {
			return d
		}
		d++
		id = p
	}
}

// RemoveNode removes id and its whole sub-tree, detaching it from its
// parent. It returns the removed ids in pre-order. Removing the root
// empties the tree.
func (t *Tree[T]) RemoveNode(id element.ID) []element.ID {
	t.mustHave(id)
	if p, ok := t.parents[id]; ok {
		pn := t.nodes[p]
		if i, found := slices.BinarySearch(pn.Children, id); found {
			pn.Children = slices.Delete(pn.Children, i, i+1)
		}
	}
	var removed []element.ID
	t.walk(id, func(n *Node[T]) bool {
		removed = append(removed, n.ID)
		return Continue
	})
	for _, r := range removed {
		delete(t.nodes, r)
		delete(t.parents, r)
	}
	if id == t.root {
		t.root = 0
	}
	return removed
}

// RemoveChildren removes every descendant of id, keeping id itself.
// It returns the removed ids.
func (t *Tree[T]) RemoveChildren(id element.ID) []element.ID {
	n := t.mustHave(id)
	var removed []element.ID
	for _, c := range slices.Clone(n.Children) {
		removed = append(removed, t.RemoveNode(c)...)
	}
	return removed
}

// MergeSubtree copies every node of sub into t and attaches the root
// of sub as a child of parent. It returns the merged ids in pre-order.
// None of the ids of sub may already be present in t.
func (t *Tree[T]) MergeSubtree(parent element.ID, sub *Tree[T]) []element.ID {
	t.mustHave(parent)
	ids := t.copyNodes(sub)
	t.AddChild(parent, sub.root)
	return ids
}

// ReplaceRoot discards the whole tree and replaces it with the nodes
// of sub, whose root becomes the root. It returns the merged ids.
func (t *Tree[T]) ReplaceRoot(sub *Tree[T]) []element.ID {
	clear(t.nodes)
	clear(t.parents)
	t.root = 0
	ids := t.copyNodes(sub)
	t.root = sub.root
	return ids
}

func (t *Tree[T]) copyNodes(sub *Tree[T]) []element.ID {
	if sub.root == 0 {
		panic("tree: merging an empty tree")
	}
	var ids []element.ID
	sub.WalkDown(func(n *Node[T]) bool {
		if _, ok := t.nodes[n.ID]; ok {
			panic(fmt.Sprintf("tree: merged node %v already present", n.ID))
		}
		ids = append(ids, n.ID)
		return Continue
	})
	for _, id := range ids {
		n := sub.nodes[id]
		t.nodes[id] = n
		for _, c := range n.Children {
			t.parents[c] = id
		}
	}
	return ids
}

// Subtree returns a new tree holding the nodes of the sub-tree rooted at
// id. The nodes are shared with t, not copied.
func (t *Tree[T]) Subtree(id element.ID) *Tree[T] {
	t.mustHave(id)
	sub := New[T]()
	t.walk(id, func(n *Node[T]) bool {
		sub.nodes[n.ID] = n
		for _, c := range n.Children {
			sub.parents[c] = n.ID
		}
		return Continue
	})
	sub.root = id
	return sub
}

// IDs returns every id in the tree, sorted.
func (t *Tree[T]) IDs() []element.ID {
	ids := make([]element.ID, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
