// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	q := New[int]()
	_, ok := q.TryReceive()
	assert.False(t, ok)

	for i := range 5 {
		q.Send(i)
	}
	assert.Equal(t, 5, q.Len())
	v, ok := q.TryReceive()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, []int{1, 2, 3, 4}, q.Drain())
	assert.Equal(t, 0, q.Len())
}

func TestReadySignal(t *testing.T) {
	q := New[string]()
	select {
	case <-q.Ready():
		t.Fatal("ready before any send")
	default:
	}
	q.Send("a")
	q.Send("b")
	select {
	case <-q.Ready():
	default:
		t.Fatal("not ready after send")
	}
	assert.Equal(t, []string{"a", "b"}, q.Drain())
}

func TestConcurrentSenders(t *testing.T) {
	q := New[int]()
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				q.Send(g*1000 + i)
			}
		}()
	}
	wg.Wait()
	got := q.Drain()
	assert.Len(t, got, 8000)

	// per-producer order is preserved
	last := map[int]int{}
	for _, v := range got {
		g := v / 1000
		if prev, ok := last[g]; ok {
			assert.Less(t, prev, v)
		}
		last[g] = v
	}
}

func TestClose(t *testing.T) {
	q := New[int]()
	q.Send(1)
	q.Close()
	assert.True(t, q.Closed())
	assert.Panics(t, func() { q.Send(2) })
	v, ok := q.TryReceive()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
