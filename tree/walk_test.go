// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"loomui.org/core/element"
)

func TestWalkDownBreak(t *testing.T) {
	tr, ids := newTestTree(t)
	var got []string
	tr.WalkDown(func(n *Node[string]) bool {
		got = append(got, n.Value)
		if n.Value == "a" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "b"}, got)

	got = nil
	tr.WalkDownFrom(ids["a"], func(n *Node[string]) bool {
		got = append(got, n.Value)
		return Continue
	})
	assert.Equal(t, []string{"a", "a1"}, got)
}

func TestWalkDeep(t *testing.T) {
	element.ResetIDs()
	tr := New[int]()
	prev := tr.AddNode(0)
	for i := 1; i < 10000; i++ {
		id := tr.AddNode(i)
		tr.AddChild(prev, id)
		prev = id
	}
	n := 0
	tr.WalkDown(func(*Node[int]) bool {
		n++
		return Continue
	})
	assert.Equal(t, 10000, n)
	assert.Equal(t, 9999, tr.Depth(prev))
}
