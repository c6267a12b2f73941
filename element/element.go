// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element provides the process-wide identity service for
// elements: every live widget instance is identified by an [ID] that
// is never reused.
package element

import (
	"strconv"
	"sync/atomic"
)

// ID identifies one element. The zero ID is never allocated and
// means "no element".
type ID uint64

// String returns the decimal form of the id prefixed with "#".
func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

var counter atomic.Uint64

// NewID returns a fresh element id. It panics on wrap-around.
func NewID() ID {
	v := counter.Add(1)
	if v == 0 {
		panic("element: id counter wrapped around")
	}
	return ID(v)
}

// ResetIDs resets the counter so the next id is 1. It is only
// meant for tests that build independent trees and compare ids.
func ResetIDs() {
	counter.Store(0)
}
