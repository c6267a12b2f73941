// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// Value is the source of a widget property: either a constant [Var]
// or a binding to a name in [UIState].
type Value struct {
	constant Var
	name     string
	bound    bool
}

// Const returns a constant Value.
func Const(v Var) Value {
	return Value{constant: v}
}

// ConstString is shorthand for Const(StringVar(s)).
func ConstString(s string) Value {
	return Const(StringVar(s))
}

// Binding returns a Value bound to the given name.
func Binding(name string) Value {
	return Value{name: name, bound: true}
}

// IsBinding returns whether the value is a binding.
func (v Value) IsBinding() bool { return v.bound }

// Name returns the bound name, or "" for a constant.
func (v Value) Name() string { return v.name }

// Binder records that the element being built depends on a name.
type Binder interface {
	Bind(name string)
}

// Resolve returns the current value. For a binding it reads s and,
// if b is non-nil, records the dependency with it. A binding to an
// absent name returns false.
func (v Value) Resolve(s *UIState, b Binder) (Var, bool) {
	if !v.bound {
		return v.constant, true
	}
	if b != nil {
		b.Bind(v.name)
	}
	if s == nil {
		return Var{}, false
	}
	return s.Get(v.name)
}

// ResolveString is like [Value.Resolve] but returns the display
// string, or "" when the value is absent.
func (v Value) ResolveString(s *UIState, b Binder) string {
	r, ok := v.Resolve(s, b)
	if !ok {
		return ""
	}
	return r.String()
}
