// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strings"

	"loomui.org/core/state"
)

// Message is an application message dispatched by a widget and handled
// by the application delegate.
type Message struct {
	Name string
	Args []state.Var
}

// NewMessage returns a message with the given name and arguments.
func NewMessage(name string, args ...state.Var) Message {
	return Message{Name: name, Args: args}
}

// Arg returns the i'th argument, or false if there is none.
func (m Message) Arg(i int) (state.Var, bool) {
	if i < 0 || i >= len(m.Args) {
		return state.Var{}, false
	}
	return m.Args[i], true
}

func (m Message) String() string {
	if len(m.Args) == 0 {
		return m.Name
	}
	args := make([]string, len(m.Args))
	for i, a := range m.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", m.Name, strings.Join(args, ", "))
}
