// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"loomui.org/core/core"
	"loomui.org/core/state"
)

// Delegate is implemented by applications to seed the value store and
// to react to application messages and lifecycle changes. Embed
// [DelegateBase] for the defaults.
type Delegate interface {

	// CreateUIState returns the initial value store.
	CreateUIState() *state.UIState

	// AppWillStart is called before the first loop turn.
	AppWillStart(a *Application)

	// AppStarted is called after the windows requested before the start
	// have been opened.
	AppStarted(a *Application)

	// AppWillQuit is called once, when the application quits.
	AppWillQuit()

	// HandleMessage handles a message dispatched by a widget or sent with
	// [Application.Send]. It may change values with [state.UIState.Set].
	HandleMessage(msg core.Message, s *state.UIState)

	// QuitWhenLastWindowCloses returns whether closing the last window
	// quits the application.
	QuitWhenLastWindowCloses() bool
}

// DelegateBase provides the default implementation of every [Delegate]
// method.
type DelegateBase struct{}

func (DelegateBase) CreateUIState() *state.UIState                    { return state.New() }
func (DelegateBase) AppWillStart(a *Application)                      {}
func (DelegateBase) AppStarted(a *Application)                        {}
func (DelegateBase) AppWillQuit()                                     {}
func (DelegateBase) HandleMessage(msg core.Message, s *state.UIState) {}
func (DelegateBase) QuitWhenLastWindowCloses() bool                   { return true }
