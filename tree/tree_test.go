// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loomui.org/core/element"
)

// newTestTree returns
//
//	root
//	├── a
//	│   └── a1
//	└── b
func newTestTree(t *testing.T) (*Tree[string], map[string]element.ID) {
	t.Helper()
	element.ResetIDs()
	tr := New[string]()
	ids := map[string]element.ID{}
	for _, name := range []string{"root", "a", "b", "a1"} {
		ids[name] = tr.AddNode(name)
	}
	tr.AddChild(ids["root"], ids["b"])
	tr.AddChild(ids["root"], ids["a"])
	tr.AddChild(ids["a"], ids["a1"])
	return tr, ids
}

func TestAddChildSorted(t *testing.T) {
	tr, ids := newTestTree(t)
	assert.Equal(t, ids["root"], tr.RootID())
	assert.Equal(t, []element.ID{ids["a"], ids["b"]}, tr.Node(ids["root"]).Children)
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, "a1", tr.Node(ids["a1"]).Value)
}

func TestFindParent(t *testing.T) {
	tr, ids := newTestTree(t)
	p, ok := tr.FindParent(ids["a1"])
	assert.True(t, ok)
	assert.Equal(t, ids["a"], p)
	_, ok = tr.FindParent(ids["root"])
	assert.False(t, ok)
	assert.Equal(t, 2, tr.Depth(ids["a1"]))
	assert.True(t, tr.IsAncestor(ids["root"], ids["a1"]))
	assert.False(t, tr.IsAncestor(ids["b"], ids["a1"]))
	assert.Equal(t, []element.ID{ids["root"], ids["a"], ids["a1"]}, tr.Path(ids["a1"]))
}

func TestProgrammerFaults(t *testing.T) {
	tr, ids := newTestTree(t)
	assert.Panics(t, func() { tr.Node(999) }, "missing node")
	assert.Panics(t, func() { tr.AddChild(ids["b"], ids["a1"]) }, "duplicate child insertion")
	assert.Panics(t, func() { tr.AddChild(ids["a1"], ids["root"]) }, "cycle through root")
	assert.Panics(t, func() { tr.AddNodeWithID(ids["a"], &Node[string]{}) }, "reused id")

	// a node may not become its own ancestor
	x := tr.AddNode("x")
	tr.AddChild(ids["b"], x)
	tr.RemoveNode(x)
	y := tr.AddNode("y")
	z := tr.AddNode("z")
	tr.AddChild(y, z)
	assert.Panics(t, func() { tr.AddChild(z, y) })
}

func TestRemoveNode(t *testing.T) {
	tr, ids := newTestTree(t)
	removed := tr.RemoveNode(ids["a"])
	assert.Equal(t, []element.ID{ids["a"], ids["a1"]}, removed)
	assert.False(t, tr.Has(ids["a1"]), "no orphan descendants")
	assert.Equal(t, []element.ID{ids["b"]}, tr.Node(ids["root"]).Children)
	_, ok := tr.FindParent(ids["a"])
	assert.False(t, ok)

	tr.RemoveNode(ids["root"])
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, element.ID(0), tr.RootID())
}

func TestRemoveChildren(t *testing.T) {
	tr, ids := newTestTree(t)
	removed := tr.RemoveChildren(ids["root"])
	assert.ElementsMatch(t, []element.ID{ids["a"], ids["a1"], ids["b"]}, removed)
	assert.Equal(t, []element.ID{ids["root"]}, tr.IDs())
	assert.Empty(t, tr.Node(ids["root"]).Children)
}

func TestMergeSubtree(t *testing.T) {
	tr, ids := newTestTree(t)

	sub := New[string]()
	s := sub.AddNode("s")
	s1 := sub.AddNode("s1")
	sub.AddChild(s, s1)

	merged := tr.MergeSubtree(ids["b"], sub)
	assert.Equal(t, []element.ID{s, s1}, merged)
	for _, id := range merged {
		require.True(t, tr.Has(id))
	}
	p, _ := tr.FindParent(s1)
	assert.Equal(t, s, p)
	p, _ = tr.FindParent(s)
	assert.Equal(t, ids["b"], p)

	var order []string
	tr.WalkDown(func(n *Node[string]) bool {
		order = append(order, n.Value)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "b", "s", "s1"}, order)
}

func TestReplaceRoot(t *testing.T) {
	tr, _ := newTestTree(t)
	sub := New[string]()
	r := sub.AddNode("new")
	c := sub.AddNode("child")
	sub.AddChild(r, c)
	tr.ReplaceRoot(sub)
	assert.Equal(t, r, tr.RootID())
	assert.Equal(t, []element.ID{r, c}, tr.IDs())
}

func TestSubtreeRoundTrip(t *testing.T) {
	tr, ids := newTestTree(t)
	before := tr.IDs()
	sub := tr.Subtree(ids["a"])
	assert.Equal(t, []element.ID{ids["a"], ids["a1"]}, sub.IDs())

	tr.RemoveNode(ids["a"])
	tr.MergeSubtree(ids["root"], sub)
	if diff := cmp.Diff(before, tr.IDs()); diff != "" {
		t.Errorf("ids differ after remove+merge (-want +got):\n%s", diff)
	}
	assert.Equal(t, []element.ID{ids["a"], ids["b"]}, tr.Node(ids["root"]).Children)
}
