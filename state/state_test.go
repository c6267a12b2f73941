// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loomui.org/core/element"
)

func TestVarAccessors(t *testing.T) {
	r := RealVar(1.5)
	_, ok := r.Int()
	assert.False(t, ok)
	f, ok := r.Real()
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), f)

	i, ok := IntVar(7).Int()
	assert.True(t, ok)
	assert.Equal(t, int32(7), i)

	s, ok := StringVar("hi").Str()
	assert.True(t, ok)
	assert.Equal(t, "hi", s)

	arr, ok := ArrayVar(IntVar(1), StringVar("a")).Array()
	require.True(t, ok)
	assert.Len(t, arr, 2)
	assert.Equal(t, Array, ArrayVar().Kind())
	assert.Equal(t, "Integer", Integer.String())
}

func TestVarString(t *testing.T) {
	for _, n := range []int32{0, -1, 42, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, strconv.Itoa(int(n)), IntVar(n).String())
	}
	assert.Equal(t, "[1, x, 2.5]", ArrayVar(IntVar(1), StringVar("x"), RealVar(2.5)).String())
	assert.Equal(t, "plain", StringVar("plain").String())
}

func TestVarRealRoundTrip(t *testing.T) {
	for _, x := range []float32{0, 1, -1, 0.1, 3.14159, 1e-20, 123456.78, math.MaxFloat32} {
		got, err := strconv.ParseFloat(RealVar(x).String(), 32)
		require.NoError(t, err)
		assert.Equal(t, x, float32(got))
	}
}

func TestVarEqual(t *testing.T) {
	assert.True(t, IntVar(3).Equal(IntVar(3)))
	assert.False(t, IntVar(3).Equal(RealVar(3)))
	assert.True(t, ArrayVar(IntVar(1)).Equal(ArrayVar(IntVar(1))))
	assert.False(t, ArrayVar(IntVar(1)).Equal(ArrayVar(IntVar(1), IntVar(2))))
}

type recordBinder []string

func (r *recordBinder) Bind(name string) { *r = append(*r, name) }

func TestValueResolve(t *testing.T) {
	s := New()
	s.Register("greeting", StringVar("hello"))

	var b recordBinder
	v, ok := Const(IntVar(5)).Resolve(s, &b)
	assert.True(t, ok)
	assert.Equal(t, "5", v.String())
	assert.Empty(t, b)

	assert.Equal(t, "hello", Binding("greeting").ResolveString(s, &b))
	assert.Equal(t, []string{"greeting"}, []string(b))

	_, ok = Binding("missing").Resolve(s, &b)
	assert.False(t, ok)
	assert.Equal(t, "", Binding("missing").ResolveString(s, nil))
}

func TestUpdateFanOut(t *testing.T) {
	s := New()
	s.Register("x", IntVar(0))
	s.Register("y", IntVar(0))
	assert.False(t, s.HasUpdates(), "register does not mark updates")

	s.BindOne(1, "x")
	s.BindOne(2, "x")
	s.BindOne(2, "x")
	s.BindOne(3, "y")

	s.Set("x", IntVar(42))
	v, ok := s.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "42", v.String())
	assert.Equal(t, []Update{{"x", 1}, {"x", 2}}, s.Updates())

	// setting twice in the same frame reports each pair once
	s.Set("x", IntVar(43))
	s.Set("y", IntVar(1))
	assert.Equal(t, []Update{{"x", 1}, {"x", 2}, {"y", 3}}, s.Updates())

	s.ClearUpdates()
	assert.Empty(t, s.Updates())
	v, _ = s.Get("x")
	assert.Equal(t, "43", v.String())
}

func TestUnbind(t *testing.T) {
	s := New()
	s.BindOne(1, "x")
	s.BindOne(2, "x")
	s.Set("x", IntVar(1))
	s.Unbind(1)
	assert.Equal(t, []element.ID{2}, s.Dependees("x"))
	assert.Equal(t, []Update{{"x", 2}}, s.Updates())
	s.Unbind(2)
	assert.Empty(t, s.Dependees("x"))
	assert.False(t, s.HasUpdates())
}
