// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "loomui.org/core/element"

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkDown calls fun on every node in pre-order starting at the root,
// visiting children in id order. If fun returns [Break], the children
// of that node are skipped.
func (t *Tree[T]) WalkDown(fun func(n *Node[T]) bool) {
	if t.root == 0 {
		return
	}
	t.walk(t.root, fun)
}

// WalkDownFrom is [Tree.WalkDown] starting at id.
func (t *Tree[T]) WalkDownFrom(id element.ID, fun func(n *Node[T]) bool) {
	t.mustHave(id)
	t.walk(id, fun)
}

// walk uses an explicit stack so that deep hierarchies do not grow
// the goroutine stack.
func (t *Tree[T]) walk(id element.ID, fun func(n *Node[T]) bool) {
	stack := []element.ID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[cur]
		if !fun(n) {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// Path returns the ids from the root down to id, inclusive.
func (t *Tree[T]) Path(id element.ID) []element.ID {
	t.mustHave(id)
	path := []element.ID{id}
	for {
		p, ok := t.parents[id]
		if !ok {
			break
		}
		path = append(path, p)
		id = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
