// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loomui.org/core/element"
	"loomui.org/core/system"
)

func TestDriverSequence(t *testing.T) {
	d := NewDriver(7, 100*time.Millisecond)
	var got []EventTypes
	var phases []float32
	for range 10 {
		ev, ok := d.Advance(30 * time.Millisecond)
		if !ok {
			break
		}
		got = append(got, ev.Type)
		assert.Equal(t, ID(7), ev.ID)
		if ev.Type == Update {
			phases = append(phases, ev.Phase)
		}
	}
	assert.Equal(t, []EventTypes{Start, Update, Update, Update, End}, got)
	require.Len(t, phases, 3)
	for i := 1; i < len(phases); i++ {
		assert.LessOrEqual(t, phases[i-1], phases[i], "phases are monotone")
	}
	for _, p := range phases {
		assert.Less(t, p, float32(1))
	}
	assert.True(t, d.Done())
	assert.Greater(t, d.Phase(), float32(1), "overshoot is visible on the driver")
}

func TestDriverZeroDuration(t *testing.T) {
	d := NewDriver(1, 0)
	ev, _ := d.Advance(0)
	assert.Equal(t, Start, ev.Type)
	ev, _ = d.Advance(0)
	assert.Equal(t, End, ev.Type)
	assert.Equal(t, float32(1), ev.Phase)
	_, ok := d.Advance(time.Second)
	assert.False(t, ok)
}

func TestAnimatorReaps(t *testing.T) {
	a := NewAnimator()
	win := system.WindowID(1)
	a.Add(win, 10, Request{Kind: Widget, ID: 1, Duration: 50 * time.Millisecond})
	a.Add(win, 5, Request{Kind: Widget, ID: 2, Duration: 200 * time.Millisecond})
	assert.Equal(t, 2, a.Len())

	evs := a.TickBy(0)[win]
	require.Len(t, evs, 2)
	assert.Equal(t, []ElementEvent{
		{5, Event{Type: Start, ID: 2}},
		{10, Event{Type: Start, ID: 1}},
	}, evs, "sorted by element")

	evs = a.TickBy(60 * time.Millisecond)[win]
	require.Len(t, evs, 2)
	assert.Equal(t, Update, evs[0].Event.Type)
	assert.InDelta(t, 0.3, evs[0].Event.Phase, 1e-6)
	assert.Equal(t, End, evs[1].Event.Type)
	assert.Equal(t, 1, a.Len(), "ended driver reaped")

	evs = a.TickBy(200 * time.Millisecond)[win]
	require.Len(t, evs, 1)
	assert.Equal(t, End, evs[0].Event.Type)
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.TickBy(time.Second))
}

func TestAnimatorClock(t *testing.T) {
	now := time.Unix(0, 0)
	a := NewAnimator(WithClock(func() time.Time { return now }))
	a.Add(2, 1, Request{ID: 3, Duration: time.Second})
	evs := a.Tick()[2]
	require.Len(t, evs, 1)
	assert.Equal(t, Start, evs[0].Event.Type)

	now = now.Add(250 * time.Millisecond)
	evs = a.Tick()[2]
	require.Len(t, evs, 1)
	assert.InDelta(t, 0.25, evs[0].Event.Phase, 1e-6)
}

func TestAnimatorRemove(t *testing.T) {
	a := NewAnimator()
	a.Add(1, 10, Request{ID: 1, Duration: time.Second})
	a.Add(1, 11, Request{ID: 1, Duration: time.Second})
	a.Add(2, 12, Request{ID: 1, Duration: time.Second})
	a.RemoveElements(1, []element.ID{10})
	assert.Equal(t, 2, a.Len())
	a.RemoveWindow(2)
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "Update(1, 0.500)", Event{Type: Update, ID: 1, Phase: 0.5}.String())
}
