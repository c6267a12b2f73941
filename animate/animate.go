// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate provides time-driven animation drivers. An [Animator]
// owns the drivers of every window and, at each tick, projects the real
// time elapsed since the previous tick to a phase for each driver and
// emits Start, Update and End [Event]s.
package animate

import (
	"fmt"
	"time"
)

// Kinds is the kind of animation request, which determines where its
// events are delivered.
type Kinds int32

const (
	// Widget animations deliver their events back to the widget on the
	// main loop.
	Widget Kinds = iota

	// Painter animations deliver their events to the painter snapshot on
	// the render worker.
	Painter
)

func (k Kinds) String() string {
	if k == Painter {
		return "Painter"
	}
	return "Widget"
}

// ID identifies an animation of one element. An element may run
// several animations at once under different ids.
type ID uint32

// Request asks for a new driver of the given kind and duration.
type Request struct {
	Kind     Kinds
	ID       ID
	Duration time.Duration
}

// EventTypes are the types of animation [Event].
type EventTypes int32

const (
	// Start is emitted exactly once per driver, on its first tick.
	Start EventTypes = iota

	// Update carries a phase in (0, 1).
	Update

	// End is emitted exactly once per driver, once its phase reaches 1.
	End
)

func (t EventTypes) String() string {
	switch t {
	case Start:
		return "Start"
	case Update:
		return "Update"
	}
	return "End"
}

// Event is one animation event. Phase is 0 for Start and 1 for End.
type Event struct {
	Type  EventTypes
	ID    ID
	Phase float32
}

func (e Event) String() string {
	if e.Type == Update {
		return fmt.Sprintf("Update(%d, %.3f)", e.ID, e.Phase)
	}
	return fmt.Sprintf("%v(%d)", e.Type, e.ID)
}
