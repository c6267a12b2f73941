// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"cmp"
	"slices"
	"time"

	"loomui.org/core/element"
	"loomui.org/core/system"
)

// ElementEvent is an animation event addressed to one element.
type ElementEvent struct {
	Element element.ID
	Event   Event
}

type entry struct {
	element element.ID
	driver  *Driver
}

// Animator owns the drivers of every window. It is not safe for
// concurrent use; the render worker owns it.
type Animator struct {
	drivers map[system.WindowID][]entry
	now     func() time.Time
	last    time.Time
}

// Option configures an [Animator].
type Option func(a *Animator)

// WithClock sets the clock the animator measures real time with.
func WithClock(now func() time.Time) Option {
	return func(a *Animator) { a.now = now }
}

// NewAnimator returns an empty animator.
func NewAnimator(opts ...Option) *Animator {
	a := &Animator{
		drivers: map[system.WindowID][]entry{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Add registers a new driver for the element. An element may hold
// several drivers; a request reusing a running id starts a second driver.
func (a *Animator) Add(win system.WindowID, el element.ID, req Request) {
	a.drivers[win] = append(a.drivers[win], entry{el, NewDriver(req.ID, req.Duration)})
}

// RemoveWindow drops every driver of the window.
func (a *Animator) RemoveWindow(win system.WindowID) {
	delete(a.drivers, win)
}

// RemoveElements drops the drivers of the given elements, which have
// been destroyed.
func (a *Animator) RemoveElements(win system.WindowID, ids []element.ID) {
	es, ok := a.drivers[win]
	if !ok || len(ids) == 0 {
		return
	}
	es = slices.DeleteFunc(es, func(e entry) bool {
		return slices.Contains(ids, e.element)
	})
	a.setEntries(win, es)
}

// Len returns the number of live drivers across all windows.
func (a *Animator) Len() int {
	n := 0
	for _, es := range a.drivers {
		n += len(es)
	}
	return n
}

// Tick advances every driver by the wall-clock time since the previous
// tick and returns the events produced, per window.
func (a *Animator) Tick() map[system.WindowID][]ElementEvent {
	now := a.now()
	var dt time.Duration
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
	}
	a.last = now
	return a.TickBy(dt)
}

// TickBy advances every driver by dt and returns the events produced,
// per window. Finished drivers are reaped after emitting End.
func (a *Animator) TickBy(dt time.Duration) map[system.WindowID][]ElementEvent {
	out := map[system.WindowID][]ElementEvent{}
	for win, es := range a.drivers {
		var evs []ElementEvent
		for _, e := range es {
			if ev, ok := e.driver.Advance(dt); ok {
				evs = append(evs, ElementEvent{e.element, ev})
			}
		}
		es = slices.DeleteFunc(es, func(e entry) bool { return e.driver.Done() })
		a.setEntries(win, es)
		if len(evs) > 0 {
			slices.SortStableFunc(evs, func(x, y ElementEvent) int {
				return cmp.Compare(x.Element, y.Element)
			})
			out[win] = evs
		}
	}
	return out
}

func (a *Animator) setEntries(win system.WindowID, es []entry) {
	if len(es) == 0 {
		delete(a.drivers, win)
		return
	}
	a.drivers[win] = es
}
