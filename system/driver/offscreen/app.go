// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a headless implementation of the system
// interfaces, for testing and capturing apps without a display. Events
// are injected with [App.Push] and frames are kept in memory.
package offscreen

import (
	"errors"
	"sync"

	"loomui.org/core/math32"
	"loomui.org/core/system"
)

var errQuit = errors.New("offscreen: app has quit")

// App is the [system.App] implementation on the offscreen platform.
type App struct {
	mu      sync.Mutex
	events  chan system.Event
	windows map[system.WindowID]*Window
	next    system.WindowID
	dpi     float32
	quit    bool
}

var _ system.App = (*App)(nil)

// Option configures an [App].
type Option func(a *App)

// WithDevicePixelRatio sets the device pixel ratio of new windows.
func WithDevicePixelRatio(dpi float32) Option {
	return func(a *App) { a.dpi = dpi }
}

// New returns a new offscreen app.
func New(opts ...Option) *App {
	a := &App{
		events:  make(chan system.Event, 1024),
		windows: map[system.WindowID]*Window{},
		dpi:     1,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// NewWindow creates a new window. A zero size defaults to 800x600.
func (a *App) NewWindow(opts system.NewWindowOptions) (system.Window, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.quit {
		return nil, errQuit
	}
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	a.next++
	w := &Window{
		app:   a,
		id:    a.next,
		title: opts.Title,
		size:  math32.Vec2(float32(opts.Width), float32(opts.Height)).MulScalar(a.dpi),
		dpi:   a.dpi,
	}
	a.windows[w.id] = w
	return w, nil
}

// Events returns the channel of injected events.
func (a *App) Events() <-chan system.Event {
	return a.events
}

// Push injects a raw event, as if the OS had delivered it.
// Events pushed after [App.Quit] are dropped.
func (a *App) Push(ev system.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.quit {
		return
	}
	a.events <- ev
}

// Window returns the window with the given id.
func (a *App) Window(id system.WindowID) (*Window, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	w, ok := a.windows[id]
	return w, ok
}

// NumWindows returns the number of open windows.
func (a *App) NumWindows() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.windows)
}

// Quit closes every window and the event channel.
func (a *App) Quit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.quit {
		return
	}
	a.quit = true
	clear(a.windows)
	close(a.events)
}

func (a *App) removeWindow(id system.WindowID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.windows, id)
}
