// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"strconv"
	"strings"
)

// Kinds are the kinds of value a [Var] can hold.
type Kinds int32

const (
	// Real is a float32 value.
	Real Kinds = iota

	// Integer is an int32 value.
	Integer

	// String is a string value.
	String

	// Array is a sequence of [Var] values.
	Array
)

var kindNames = [...]string{"Real", "Integer", "String", "Array"}

func (k Kinds) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kinds(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Var is a variant value stored in [UIState]. The zero Var is Real(0).
type Var struct {
	kind Kinds
	real float32
	ival int32
	str  string
	arr  []Var
}

// RealVar returns a [Real] Var.
func RealVar(v float32) Var { return Var{kind: Real, real: v} }

// IntVar returns an [Integer] Var.
func IntVar(v int32) Var { return Var{kind: Integer, ival: v} }

// StringVar returns a [String] Var.
func StringVar(v string) Var { return Var{kind: String, str: v} }

// ArrayVar returns an [Array] Var holding a copy of the given values.
func ArrayVar(vs ...Var) Var {
	return Var{kind: Array, arr: append([]Var(nil), vs...)}
}

// Kind returns the kind of value held.
func (v Var) Kind() Kinds { return v.kind }

// Real returns the value if it is a [Real].
func (v Var) Real() (float32, bool) { return v.real, v.kind == Real }

// Int returns the value if it is an [Integer].
func (v Var) Int() (int32, bool) { return v.ival, v.kind == Integer }

// Str returns the value if it is a [String].
func (v Var) Str() (string, bool) { return v.str, v.kind == String }

// Array returns a copy of the values if it is an [Array].
func (v Var) Array() ([]Var, bool) {
	if v.kind != Array {
		return nil, false
	}
	return append([]Var(nil), v.arr...), true
}

// Equal reports whether two Vars hold the same kind and value.
func (v Var) Equal(o Var) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Real:
		return v.real == o.real
	case Integer:
		return v.ival == o.ival
	case String:
		return v.str == o.str
	}
	if len(v.arr) != len(o.arr) {
		return false
	}
	for i := range v.arr {
		if !v.arr[i].Equal(o.arr[i]) {
			return false
		}
	}
	return true
}

// String returns the display form of the value. Integers use their
// decimal form and reals the shortest form that parses back to the
// same float32.
func (v Var) String() string {
	switch v.kind {
	case Real:
		return strconv.FormatFloat(float64(v.real), 'g', -1, 32)
	case Integer:
		return strconv.FormatInt(int64(v.ival), 10)
	case String:
		return v.str
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.arr {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}
