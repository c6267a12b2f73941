// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the render worker: the goroutine that owns
// the painter trees, canvases and surfaces of every window, ticks the
// animators, and paints and presents each frame.
package render

import (
	"context"
	"image/color"
	"log/slog"
	"slices"
	"time"

	"loomui.org/core/animate"
	"loomui.org/core/base/queue"
	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/paint/raster"
	"loomui.org/core/system"
)

// window is the render-side state of one window.
type window struct {
	id      system.WindowID
	tree    *core.PainterTree
	size    math32.Vector2
	dpi     float32
	blitter system.Blitter
	canvas  paint.Canvas
	dirty   bool

	overlay    *core.PainterTree
	overlayPos math32.Vector2
}

// Worker owns every painter tree. All its state is confined to the
// goroutine running [Worker.Run]; other goroutines only use [Worker.Send]
// and [Worker.Events].
type Worker struct {
	inbox  *queue.Queue[Message]
	outbox *queue.Queue[FrameEvents]

	windows map[system.WindowID]*window

	widgetAnims  *animate.Animator
	painterAnims *animate.Animator

	newCanvas  func(width, height int) paint.Canvas
	interval   time.Duration
	background color.RGBA
	frames     int
}

// Option configures a [Worker].
type Option func(w *Worker)

// WithCanvas sets the function creating the canvas of a window.
func WithCanvas(fn func(width, height int) paint.Canvas) Option {
	return func(w *Worker) { w.newCanvas = fn }
}

// WithClock sets the clock of both animators.
func WithClock(now func() time.Time) Option {
	return func(w *Worker) {
		w.widgetAnims = animate.NewAnimator(animate.WithClock(now))
		w.painterAnims = animate.NewAnimator(animate.WithClock(now))
	}
}

// WithFrameRate sets the number of frames per second of [Worker.Run].
func WithFrameRate(fps int) Option {
	return func(w *Worker) {
		if fps > 0 {
			w.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithBackground sets the color each frame is cleared with.
func WithBackground(c color.RGBA) Option {
	return func(w *Worker) { w.background = c }
}

// NewWorker returns a worker that paints into raster canvases at 60
// frames per second.
func NewWorker(opts ...Option) *Worker {
	w := &Worker{
		inbox:        queue.New[Message](),
		outbox:       queue.New[FrameEvents](),
		windows:      map[system.WindowID]*window{},
		widgetAnims:  animate.NewAnimator(),
		painterAnims: animate.NewAnimator(),
		newCanvas:    func(width, height int) paint.Canvas { return raster.New(width, height) },
		interval:     time.Second / 60,
		background:   color.RGBA{255, 255, 255, 255},
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Send queues a message for the worker. It never blocks, and panics
// once the worker has been closed.
func (w *Worker) Send(m Message) {
	w.inbox.Send(m)
}

// Events returns the queue of widget animation events for the main
// goroutine.
func (w *Worker) Events() *queue.Queue[FrameEvents] {
	return w.outbox
}

// Close closes the inbox: the worker exits after draining it.
func (w *Worker) Close() {
	w.inbox.Close()
}

// Run runs frames at the configured rate until ctx is done or the
// worker is closed.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !w.Step() {
				slog.Debug("render: worker stopped", "frames", w.frames)
				return nil
			}
		}
	}
}

// Step runs one frame: it drains the inbox in order, ticks the widget
// then the painter animator, and paints every window. It returns false
// once the inbox is closed.
func (w *Worker) Step() bool {
	closed := w.inbox.Closed()
	for _, m := range w.inbox.Drain() {
		w.handle(m)
	}
	if closed {
		return false
	}
	w.Frame()
	return true
}

// Frames returns the number of frames run.
func (w *Worker) Frames() int { return w.frames }

// PainterTree returns the painter tree of a window.
func (w *Worker) PainterTree(win system.WindowID) (*core.PainterTree, bool) {
	ww, ok := w.windows[win]
	if !ok {
		return nil, false
	}
	return ww.tree, true
}

// Canvas returns the canvas of a window.
func (w *Worker) Canvas(win system.WindowID) (paint.Canvas, bool) {
	ww, ok := w.windows[win]
	if !ok {
		return nil, false
	}
	return ww.canvas, true
}

// Animators returns the widget and painter animators.
func (w *Worker) Animators() (widgets, painters *animate.Animator) {
	return w.widgetAnims, w.painterAnims
}

func (w *Worker) window(win system.WindowID) (*window, bool) {
	ww, ok := w.windows[win]
	if !ok {
		slog.Debug("render: message for unknown window", "window", win)
	}
	return ww, ok
}

func (w *Worker) handle(m Message) {
	if add, ok := m.(AddWindowPainter); ok {
		w.addWindow(add)
		return
	}
	ww, ok := w.window(m.Window())
	if !ok {
		return
	}
	ww.dirty = true
	switch m := m.(type) {
	case MergeUpdate:
		w.merge(ww, m)
	case UpdateBounds:
		core.ApplyBounds(ww.tree, m.Bounds)
	case UpdateState:
		for id, pe := range m.Painters {
			if n, ok := ww.tree.Get(id); ok {
				n.Value = pe
			}
		}
	case AnimationRequests:
		for _, req := range m.Requests {
			w.animator(req.Kind).Add(ww.id, m.Element, req)
		}
	case Resize:
		ww.size = m.Size
		ww.canvas = w.newCanvas(int(m.Size.X), int(m.Size.Y))
		if ww.blitter != nil {
			if err := ww.blitter.Rebuild(system.SurfaceConfig{Width: int(m.Size.X), Height: int(m.Size.Y)}); err != nil {
				slog.Warn("render: rebuilding surface", "window", ww.id, "err", err)
			}
		}
		core.ApplyBounds(ww.tree, m.Bounds)
	case DragOverlay:
		ww.overlay = m.Tree
		ww.overlayPos = m.Pos
	case MoveDragOverlay:
		ww.overlayPos = m.Pos
	case RemoveWindow:
		delete(w.windows, ww.id)
		w.widgetAnims.RemoveWindow(ww.id)
		w.painterAnims.RemoveWindow(ww.id)
	}
}

func (w *Worker) animator(k animate.Kinds) *animate.Animator {
	if k == animate.Painter {
		return w.painterAnims
	}
	return w.widgetAnims
}

func (w *Worker) addWindow(m AddWindowPainter) {
	if _, ok := w.windows[m.WindowID]; ok {
		slog.Warn("render: window added twice", "window", m.WindowID)
		return
	}
	dpi := m.DPI
	if dpi <= 0 {
		dpi = 1
	}
	ww := &window{
		id:      m.WindowID,
		tree:    m.Tree,
		size:    m.Size,
		dpi:     dpi,
		blitter: m.Blitter,
		canvas:  w.newCanvas(int(m.Size.X), int(m.Size.Y)),
		dirty:   true,
	}
	w.windows[m.WindowID] = ww
	if m.Tree.RootID() != 0 {
		w.mount(ww, m.Tree.IDs())
	}
}

// merge splices a rebuilt painter sub-tree. Elements that disappear
// lose their painter animations; elements that appear are mounted.
func (w *Worker) merge(ww *window, m MergeUpdate) {
	root := m.Tree.RootID()
	var removed []element.ID
	if ww.tree.Has(root) {
		removed = ww.tree.RemoveNode(root)
	}
	var merged []element.ID
	switch {
	case !m.HasParent:
		merged = ww.tree.ReplaceRoot(m.Tree)
	case ww.tree.Has(m.Parent):
		merged = ww.tree.MergeSubtree(m.Parent, m.Tree)
	default:
		slog.Debug("render: merge under removed parent", "window", ww.id, "parent", m.Parent)
		w.painterAnims.RemoveElements(ww.id, removed)
		return
	}
	core.ApplyBounds(ww.tree, m.Bounds)

	gone := slices.DeleteFunc(slices.Clone(removed), func(id element.ID) bool { return slices.Contains(merged, id) })
	w.painterAnims.RemoveElements(ww.id, gone)
	w.widgetAnims.RemoveElements(ww.id, gone)
	fresh := slices.DeleteFunc(merged, func(id element.ID) bool { return slices.Contains(removed, id) })
	w.mount(ww, fresh)
}

// mount calls [core.Mounter.Mounted] on the painters of ids and
// registers the animations they request.
func (w *Worker) mount(ww *window, ids []element.ID) {
	for _, id := range ids {
		n := ww.tree.Node(id)
		m, ok := n.Value.Painter.(core.Mounter)
		if !ok {
			continue
		}
		ctx := core.NewRenderCtx(id, n.Value.State)
		m.Mounted(ctx)
		for _, req := range ctx.Requests {
			w.painterAnims.Add(ww.id, id, req)
		}
	}
}

// Frame ticks both animators and paints every window that changed.
func (w *Worker) Frame() {
	w.frames++
	for win, evs := range w.widgetAnims.Tick() {
		w.outbox.Send(FrameEvents{WindowID: win, Events: evs})
	}
	for win, evs := range w.painterAnims.Tick() {
		ww, ok := w.windows[win]
		if !ok {
			continue
		}
		for _, ev := range evs {
			n, ok := ww.tree.Get(ev.Element)
			if !ok {
				continue
			}
			if ap, ok := n.Value.Painter.(core.AnimatedPainter); ok {
				n.Value.State = ap.AnimationEvent(ev.Event, n.Value.State)
				ww.dirty = true
			}
		}
	}
	for _, ww := range w.windows {
		if ww.dirty {
			w.paint(ww)
		}
	}
}

// paint draws the painter tree of a window, then its drag preview, and
// presents the pixels. A failed present is logged and retried with the
// next frame.
func (w *Worker) paint(ww *window) {
	c := ww.canvas
	c.Clear(w.background)
	c.Save()
	c.Scale(math32.Vec2(ww.dpi, ww.dpi))
	core.PaintTree(ww.tree, c)
	if ww.overlay != nil {
		c.Save()
		c.Translate(ww.overlayPos)
		core.PaintTree(ww.overlay, c)
		c.Restore()
	}
	c.Restore()
	ww.dirty = false

	px, ok := c.Pixels()
	if !ok || ww.blitter == nil {
		return
	}
	width, height := c.Size()
	if err := ww.blitter.CopyToTexture(px, width, height); err != nil {
		slog.Warn("render: present failed", "window", ww.id, "err", err)
		ww.dirty = true
	}
}
