// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state provides the reactive value store shared by the
// application and its widgets, and the variant [Var] type it holds.
package state

import (
	"cmp"
	"slices"

	"loomui.org/core/element"
)

// Update records that name changed while element id depends on it.
type Update struct {
	Name string
	ID   element.ID
}

// UIState is the value store: name → [Var], with per-name element
// dependencies and the set of (name, element) pairs changed in the
// current frame. It is owned by the main loop and is not safe for
// concurrent use.
type UIState struct {
	values    map[string]Var
	dependees map[string]map[element.ID]struct{}
	updates   map[Update]struct{}
}

// New returns an empty UIState.
func New() *UIState {
	return &UIState{
		values:    map[string]Var{},
		dependees: map[string]map[element.ID]struct{}{},
		updates:   map[Update]struct{}{},
	}
}

// Register seeds the initial value of name without touching dependees.
func (s *UIState) Register(name string, v Var) {
	s.values[name] = v
}

// Set overwrites the value of name and marks every dependee of name
// as updated in this frame.
func (s *UIState) Set(name string, v Var) {
	s.values[name] = v
	for id := range s.dependees[name] {
		s.updates[Update{name, id}] = struct{}{}
	}
}

// Get returns the current value of name.
func (s *UIState) Get(name string) (Var, bool) {
	v, ok := s.values[name]
	return v, ok
}

// BindOne records that element id depends on name.
func (s *UIState) BindOne(id element.ID, name string) {
	deps := s.dependees[name]
	if deps == nil {
		deps = map[element.ID]struct{}{}
		s.dependees[name] = deps
	}
	deps[id] = struct{}{}
}

// Unbind removes the given elements from every dependee set and from
// the pending updates. It is called when elements are destroyed.
func (s *UIState) Unbind(ids ...element.ID) {
	if len(ids) == 0 {
		return
	}
	gone := make(map[element.ID]struct{}, len(ids))
	for _, id := range ids {
		gone[id] = struct{}{}
	}
	for name, deps := range s.dependees {
		for id := range gone {
			delete(deps, id)
		}
		if len(deps) == 0 {
			delete(s.dependees, name)
		}
	}
	for u := range s.updates {
		if _, ok := gone[u.ID]; ok {
			delete(s.updates, u)
		}
	}
}

// Dependees returns the ids bound to name, sorted.
func (s *UIState) Dependees(name string) []element.ID {
	deps := s.dependees[name]
	ids := make([]element.ID, 0, len(deps))
	for id := range deps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Updates returns the changed (name, element) pairs of this frame,
// sorted by element id and then name so that iteration is deterministic.
func (s *UIState) Updates() []Update {
	us := make([]Update, 0, len(s.updates))
	for u := range s.updates {
		us = append(us, u)
	}
	slices.SortFunc(us, func(a, b Update) int {
		if c := cmp.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return us
}

// HasUpdates returns whether anything changed in this frame.
func (s *UIState) HasUpdates() bool {
	return len(s.updates) > 0
}

// ClearUpdates empties the changed set at the end of a frame.
func (s *UIState) ClearUpdates() {
	clear(s.updates)
}
