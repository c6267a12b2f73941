// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the main loop: it owns the value store and the
// widget trees of every window, turns raw window events into state
// changes, and forwards the resulting painter updates to the render
// worker.
package app

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
	"loomui.org/core/base/errors"
	"loomui.org/core/base/logx"
	"loomui.org/core/base/queue"
	"loomui.org/core/config"
	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/events"
	"loomui.org/core/render"
	"loomui.org/core/state"
	"loomui.org/core/system"
)

// WindowRequest describes a window to open. Zero sizes and an empty
// title take the configured window defaults.
type WindowRequest struct {
	Width  int
	Height int
	Title  string

	// Builder returns the root widget of the window.
	Builder func(s *state.UIState) core.Widget
}

// StateUpdate is a mutator queued for one element of one window.
type StateUpdate struct {
	Window  system.WindowID
	Element element.ID
	Mutator core.Mutator
}

// Application is the main-loop side of the engine. Everything except
// [Application.Send], [Application.UpdateState] and [Application.Quit]
// must be called from the goroutine running the loop.
type Application struct {
	sys      system.App
	delegate Delegate
	config   *config.Config
	state    *state.UIState
	worker   *render.Worker
	observe  func(render.Message)

	uis     map[system.WindowID]*core.UserInterface
	windows map[system.WindowID]system.Window
	pending []WindowRequest

	messages *queue.Queue[core.Message]
	updates  *queue.Queue[StateUpdate]
	quitting *queue.Queue[struct{}]
	configs  *queue.Queue[*config.Config]
	watch    string

	// next is an event received while the loop was waiting.
	next    system.Event
	hasNext bool

	started bool
	quit    bool
	err     error
}

// Option configures an [Application].
type Option func(a *Application)

// WithConfig sets the configuration. The default is [config.Default].
func WithConfig(c *config.Config) Option {
	return func(a *Application) { a.config = c }
}

// WithConfigWatch reloads the configuration from path whenever the file
// changes while [Application.Run] runs.
func WithConfigWatch(path string) Option {
	return func(a *Application) { a.watch = path }
}

// WithWorker sets the render worker. The default is a raster worker
// using the configured frame rate and background.
func WithWorker(w *render.Worker) Option {
	return func(a *Application) { a.worker = w }
}

// WithObserver sets a function called with every message sent to the
// render worker, before it is sent.
func WithObserver(fn func(render.Message)) Option {
	return func(a *Application) { a.observe = fn }
}

// New returns an application running on sys.
func New(sys system.App, d Delegate, opts ...Option) *Application {
	a := &Application{
		sys:      sys,
		delegate: d,
		uis:      map[system.WindowID]*core.UserInterface{},
		windows:  map[system.WindowID]system.Window{},
		messages: queue.New[core.Message](),
		updates:  queue.New[StateUpdate](),
		quitting: queue.New[struct{}](),
		configs:  queue.New[*config.Config](),
	}
	for _, o := range opts {
		o(a)
	}
	if a.config == nil {
		a.config = config.Default()
	}
	a.applyConfig(a.config)
	if a.worker == nil {
		a.worker = render.NewWorker(render.WithFrameRate(a.config.FrameRate), render.WithBackground(a.config.BackgroundColor()))
	}
	a.state = d.CreateUIState()
	if a.state == nil {
		a.state = state.New()
	}
	return a
}

// State returns the value store.
func (a *Application) State() *state.UIState { return a.state }

// Config returns the configuration.
func (a *Application) Config() *config.Config { return a.config }

// Worker returns the render worker.
func (a *Application) Worker() *render.Worker { return a.worker }

// UI returns the widget tree owner of a window.
func (a *Application) UI(win system.WindowID) (*core.UserInterface, bool) {
	ui, ok := a.uis[win]
	return ui, ok
}

// Windows returns the ids of the open windows in ascending order.
func (a *Application) Windows() []system.WindowID {
	return slices.Sorted(maps.Keys(a.uis))
}

// Quitting returns whether the application has quit.
func (a *Application) Quitting() bool { return a.quit }

// RequestWindow queues a window to be opened at the start of the next
// loop turn.
func (a *Application) RequestWindow(req WindowRequest) {
	a.pending = append(a.pending, req)
}

// Send queues a message for [Delegate.HandleMessage]. It is safe to call
// from any goroutine.
func (a *Application) Send(msg core.Message) {
	a.messages.Send(msg)
}

// UpdateState queues a state mutator for an element. It is safe to call
// from any goroutine.
func (a *Application) UpdateState(win system.WindowID, id element.ID, m core.Mutator) {
	a.updates.Send(StateUpdate{Window: win, Element: id, Mutator: m})
}

// Reconfigure queues a new configuration, applied at the next loop turn.
// The log level, scroll speed and window defaults follow it; the frame
// rate and background of a running worker do not. It is safe to call
// from any goroutine.
func (a *Application) Reconfigure(c *config.Config) {
	a.configs.Send(c)
}

func (a *Application) applyConfig(c *config.Config) {
	a.config = c
	logx.UserLevel.Set(c.Level())
	events.ScrollWheelSpeed = c.ScrollSpeed
}

// Quit asks the loop to stop at its next turn. It is safe to call from
// any goroutine.
func (a *Application) Quit() {
	a.quitting.Send(struct{}{})
}

// Start runs the application until it quits.
func (a *Application) Start() error {
	return a.Run(context.Background())
}

// Run runs the render worker and the main loop until the application
// quits or ctx is done.
func (a *Application) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	wctx, stop := context.WithCancel(ctx)
	g.Go(func() error {
		return a.worker.Run(ctx)
	})
	if a.watch != "" {
		g.Go(func() error {
			return config.Watch(wctx, a.watch, a.Reconfigure)
		})
	}
	g.Go(func() error {
		defer stop()
		defer a.shutdown()
		return a.loop(ctx)
	})
	return g.Wait()
}

func (a *Application) loop(ctx context.Context) error {
	for !a.quit {
		if a.RunOnce() {
			continue
		}
		if a.err != nil {
			return a.err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-a.sys.Events():
			if !ok {
				a.shutdown()
				return nil
			}
			a.next, a.hasNext = ev, true
		case <-a.messages.Ready():
		case <-a.updates.Ready():
		case <-a.quitting.Ready():
		case <-a.configs.Ready():
		case <-a.worker.Events().Ready():
		}
	}
	return a.err
}

// RunOnce runs one loop turn without blocking and returns whether it
// had anything to do.
func (a *Application) RunOnce() bool {
	if a.quit {
		return false
	}
	worked := false
	for _, c := range a.configs.Drain() {
		a.applyConfig(c)
		worked = true
	}
	if !a.started {
		a.started = true
		a.delegate.AppWillStart(a)
		a.openPending()
		a.delegate.AppStarted(a)
		worked = true
	}
	if len(a.pending) > 0 {
		a.openPending()
		worked = true
	}
	if a.err != nil {
		return false
	}

	var resp core.EventResponse
	var ui *core.UserInterface
	if ev, ok := a.nextEvent(); ok {
		worked = true
		ui, resp = a.handleEvent(ev)
	}

	for _, fe := range a.worker.Events().Drain() {
		worked = true
		a.dispatchAnimations(fe)
	}

	if ups := a.updates.Drain(); len(ups) > 0 {
		worked = true
		a.applyUpdates(ups)
	}

	for _, m := range a.messages.Drain() {
		worked = true
		slog.Debug("app: message", "msg", m)
		a.delegate.HandleMessage(m, a.state)
	}

	if a.state.HasUpdates() {
		worked = true
		for _, win := range a.Windows() {
			ui := a.uis[win]
			a.forward(ui, ui.HandleMutations(a.state))
		}
	}

	if ui != nil && !resp.Empty() {
		a.resolve(ui, resp)
	}
	a.state.ClearUpdates()

	if len(a.quitting.Drain()) > 0 {
		a.shutdown()
		worked = true
	}
	return worked
}

func (a *Application) nextEvent() (system.Event, bool) {
	if a.hasNext {
		ev := a.next
		a.next, a.hasNext = nil, false
		return ev, true
	}
	select {
	case ev, ok := <-a.sys.Events():
		return ev, ok
	default:
		return nil, false
	}
}

func (a *Application) openPending() {
	reqs := a.pending
	a.pending = nil
	for _, req := range reqs {
		if err := a.openWindow(req); err != nil {
			a.err = errors.Join(a.err, err)
			slog.Error("app: opening window", "title", req.Title, "err", err)
		}
	}
}

func (a *Application) openWindow(req WindowRequest) error {
	def := a.config.Window
	opts := system.NewWindowOptions{
		Title:  cmp.Or(req.Title, def.Title),
		Width:  cmp.Or(req.Width, def.Width),
		Height: cmp.Or(req.Height, def.Height),
	}
	win, err := a.sys.NewWindow(opts)
	if err != nil {
		return fmt.Errorf("app: creating window %q: %w", opts.Title, err)
	}
	bl, err := win.NewBlitter()
	if err != nil {
		errors.Log(win.Close())
		return fmt.Errorf("app: creating blitter for %v: %w", win.ID(), err)
	}
	ui := core.NewUserInterface(win.ID(), req.Builder(a.state), win.Size(), win.DevicePixelRatio())
	br := ui.Build(a.state)
	a.uis[win.ID()] = ui
	a.windows[win.ID()] = win
	a.send(render.AddWindowPainter{
		WindowID: win.ID(),
		Tree:     core.BuildPainterTree(ui.Tree(), ui.Tree().RootID(), a.state),
		Size:     win.Size(),
		DPI:      win.DevicePixelRatio(),
		Blitter:  bl,
	})
	a.requestAnimations(win.ID(), br.Animations)
	slog.Info("app: opened window", "window", win.ID(), "title", opts.Title, "elements", ui.Tree().Len())
	return nil
}

// handleEvent routes one raw event. Messages go to the delegate in this
// turn; everything else in the response is resolved at the end of it.
func (a *Application) handleEvent(ev system.Event) (*core.UserInterface, core.EventResponse) {
	ui, ok := a.uis[ev.Window()]
	if !ok {
		slog.Debug("app: event for unknown window", "window", ev.Window())
		return nil, core.EventResponse{}
	}
	resp := ui.HandleEvent(ev, a.state)
	for _, m := range resp.Messages {
		a.messages.Send(m)
	}
	resp.Messages = nil
	if _, moved := ev.(system.CursorMoved); moved {
		if _, ok := ui.DragTree(); ok && ui.Dragging() {
			a.send(render.MoveDragOverlay{WindowID: ui.Window(), Pos: ui.MousePosition()})
		}
	}
	return ui, resp
}

// dispatchAnimations hands widget animation events to their widgets.
// The state changes they ask for join the state-update queue.
func (a *Application) dispatchAnimations(fe render.FrameEvents) {
	ui, ok := a.uis[fe.WindowID]
	if !ok {
		return
	}
	for _, ev := range fe.Events {
		resp := ui.DispatchAnimation(ev.Element, ev.Event, a.state)
		for id, ms := range resp.UpdateState {
			for _, m := range ms {
				a.updates.Send(StateUpdate{Window: fe.WindowID, Element: id, Mutator: m})
			}
		}
		for _, m := range resp.Messages {
			a.messages.Send(m)
		}
		for id, reqs := range resp.AnimationRequests {
			a.send(render.AnimationRequests{WindowID: fe.WindowID, Element: id, Requests: reqs})
		}
	}
}

func (a *Application) applyUpdates(ups []StateUpdate) {
	byWindow := map[system.WindowID]map[element.ID][]core.Mutator{}
	for _, u := range ups {
		m := byWindow[u.Window]
		if m == nil {
			m = map[element.ID][]core.Mutator{}
			byWindow[u.Window] = m
		}
		m[u.Element] = append(m[u.Element], u.Mutator)
	}
	for _, win := range slices.Sorted(maps.Keys(byWindow)) {
		ui, ok := a.uis[win]
		if !ok {
			continue
		}
		a.forward(ui, ui.ApplyState(byWindow[win], a.state))
	}
}

func (a *Application) resolve(ui *core.UserInterface, resp core.EventResponse) {
	for id, reqs := range resp.AnimationRequests {
		a.send(render.AnimationRequests{WindowID: ui.Window(), Element: id, Requests: reqs})
	}
	resp.AnimationRequests = nil
	if resp.Close {
		a.closeWindow(ui)
		return
	}
	a.forward(ui, ui.Resolve(resp, a.state))
}

// forward sends what a resolution changed to the render worker.
func (a *Application) forward(ui *core.UserInterface, res core.EventResolution) {
	if res.Empty() && len(res.Build.Animations) == 0 {
		return
	}
	win := ui.Window()
	t := ui.Tree()
	for _, rb := range res.Rebuilds {
		if !t.Has(rb.ID) {
			continue
		}
		m := render.MergeUpdate{
			WindowID:  win,
			Parent:    rb.Parent,
			HasParent: rb.HasParent,
			Tree:      core.BuildPainterTree(t, rb.ID, a.state),
		}
		if rb.HasParent && t.Has(rb.Parent) {
			m.Bounds = core.BoundsOf(t, rb.Parent)
		}
		a.send(m)
	}
	bounds := map[element.ID]core.Bounds{}
	for id, b := range res.NewBounds {
		if t.Has(id) {
			bounds[id] = b
		}
	}
	if res.Resize != nil {
		a.send(render.Resize{WindowID: win, Size: res.Resize.MulScalar(ui.DevicePixelRatio()), Bounds: bounds})
	} else if len(bounds) > 0 {
		a.send(render.UpdateBounds{WindowID: win, Bounds: bounds})
	}
	if len(res.Repaint) > 0 {
		painters := map[element.ID]*core.PainterElement{}
		for _, id := range res.Repaint {
			if t.Has(id) {
				painters[id] = core.PainterSnapshot(t, id, a.state)
			}
		}
		a.send(render.UpdateState{WindowID: win, Painters: painters})
	}
	if res.DragWidgetTree != nil {
		dt := res.DragWidgetTree
		a.send(render.DragOverlay{WindowID: win, Tree: core.BuildPainterTree(dt, dt.RootID(), a.state), Pos: ui.MousePosition()})
	}
	if res.DragEnded {
		a.send(render.DragOverlay{WindowID: win})
	}
	a.requestAnimations(win, res.Build.Animations)
}

func (a *Application) requestAnimations(win system.WindowID, reqs []core.ElementRequest) {
	if len(reqs) == 0 {
		return
	}
	byElement := map[element.ID][]core.ElementRequest{}
	for _, r := range reqs {
		byElement[r.Element] = append(byElement[r.Element], r)
	}
	for _, id := range slices.Sorted(maps.Keys(byElement)) {
		m := render.AnimationRequests{WindowID: win, Element: id}
		for _, r := range byElement[id] {
			m.Requests = append(m.Requests, r.Request)
		}
		a.send(m)
	}
}

func (a *Application) closeWindow(ui *core.UserInterface) {
	win := ui.Window()
	a.state.Unbind(ui.Tree().IDs()...)
	if w, ok := a.windows[win]; ok {
		errors.Log(w.Close())
	}
	delete(a.uis, win)
	delete(a.windows, win)
	a.send(render.RemoveWindow{WindowID: win})
	slog.Info("app: closed window", "window", win)
	if len(a.uis) == 0 && a.delegate.QuitWhenLastWindowCloses() {
		a.shutdown()
	}
}

// shutdown stops the loop and the worker. It runs once.
func (a *Application) shutdown() {
	if a.quit {
		return
	}
	a.quit = true
	a.delegate.AppWillQuit()
	a.worker.Close()
	a.sys.Quit()
}

func (a *Application) send(m render.Message) {
	if a.quit {
		return
	}
	if a.observe != nil {
		a.observe(m)
	}
	a.worker.Send(m)
}
