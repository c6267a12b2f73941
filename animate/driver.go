// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import "time"

// Driver is the timer of one animation. It accumulates the real time
// passed to [Driver.Advance] and projects it to a phase.
type Driver struct {
	id       ID
	duration time.Duration
	elapsed  time.Duration
	started  bool
	ended    bool
}

// NewDriver returns a driver for the given animation id and duration.
func NewDriver(id ID, duration time.Duration) *Driver {
	return &Driver{id: id, duration: duration}
}

// ID returns the animation id.
func (d *Driver) ID() ID { return d.id }

// Duration returns the animation duration.
func (d *Driver) Duration() time.Duration { return d.duration }

// Phase returns elapsed / duration. It is not clamped, so it exceeds 1
// when the last tick overshot the duration. A zero duration has phase 1.
func (d *Driver) Phase() float32 {
	if d.duration <= 0 {
		return 1
	}
	return float32(float64(d.elapsed) / float64(d.duration))
}

// Done returns whether End has been emitted.
func (d *Driver) Done() bool { return d.ended }

// Advance adds dt to the elapsed time and returns the event for this
// tick. The first call emits Start without consuming dt; afterwards
// Update is emitted until the phase reaches 1, when End is emitted once.
// It returns false once the driver is done.
func (d *Driver) Advance(dt time.Duration) (Event, bool) {
	switch {
	case d.ended:
		return Event{}, false
	case !d.started:
		d.started = true
		return Event{Type: Start, ID: d.id}, true
	}
	d.elapsed += dt
	if ph := d.Phase(); ph < 1 {
		return Event{Type: Update, ID: d.id, Phase: ph}, true
	}
	d.ended = true
	return Event{Type: End, ID: d.id, Phase: 1}, true
}
