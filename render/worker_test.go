// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomui.org/core/animate"
	"loomui.org/core/core"
	"loomui.org/core/element"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
	"loomui.org/core/system"
	"loomui.org/core/system/driver/offscreen"
)

type pulse struct {
	Events []string
}

type rectPainter struct{}

func (rectPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	c.DrawRect(math32.RectFromSize(ctx.Size()), paint.FillPaint(color.RGBA{R: 255, A: 255}))
}

type pulsePainter struct {
	rectPainter
}

func (pulsePainter) Mounted(ctx *core.RenderCtx) {
	ctx.RequestAnimation(1, time.Second)
}

func (pulsePainter) AnimationEvent(ev animate.Event, s any) any {
	p := core.StateAs[pulse](s)
	p.Events = append(p.Events, ev.String())
	return p
}

type box struct {
	core.WidgetBase
	kids    []core.Widget
	painter core.Painter
}

func (b *box) State(s *state.UIState) any             { return pulse{} }
func (b *box) Build(ctx *core.BuildCtx) []core.Widget { return b.kids }
func (b *box) Painter(s *state.UIState) core.Painter  { return b.painter }

type harness struct {
	t   *testing.T
	s   *state.UIState
	ui  *core.UserInterface
	w   *Worker
	rec *paint.Recorder
	now time.Time
}

// newHarness builds root(box(box)) in a 40x20 window with a device
// pixel ratio of 2 and installs it in a worker painting to a recorder.
func newHarness(t *testing.T, leaf core.Painter) *harness {
	h := &harness{t: t, s: state.New(), now: time.Unix(0, 0)}
	root := &box{painter: rectPainter{}, kids: []core.Widget{&box{painter: leaf}}}
	h.ui = core.NewUserInterface(1, root, math32.Vec2(40, 20), 2)
	h.ui.Build(h.s)
	h.rec = paint.NewRecorder(40, 20)
	h.w = NewWorker(
		WithCanvas(func(width, height int) paint.Canvas { return h.rec }),
		WithClock(func() time.Time { return h.now }),
	)
	wt := h.ui.Tree()
	h.w.Send(AddWindowPainter{WindowID: 1, Tree: core.BuildPainterTree(wt, wt.RootID(), h.s), Size: math32.Vec2(40, 20), DPI: 2})
	return h
}

func (h *harness) leaf() element.ID {
	wt := h.ui.Tree()
	return wt.Node(wt.RootID()).Children[0]
}

func TestPaint(t *testing.T) {
	h := newHarness(t, rectPainter{})
	require.True(t, h.w.Step())
	assert.Equal(t, 1, h.w.Frames())
	require.Len(t, h.rec.Find("Clear"), 1)
	rects := h.rec.Find("Rect")
	require.Len(t, rects, 2)
	assert.Equal(t, math32.R2(0, 0, 40, 20), rects[0].Rect)
	assert.Equal(t, math32.R2(0, 0, 40, 20), rects[1].Rect)

	h.rec.Reset()
	h.w.Step()
	assert.Empty(t, h.rec.Ops, "unchanged windows are not repainted")
}

func TestMergeUpdate(t *testing.T) {
	h := newHarness(t, rectPainter{})
	h.w.Step()
	wt := h.ui.Tree()
	leaf := h.leaf()

	r, _, nb := h.ui.Rebuild(leaf, h.s)
	h.w.Send(MergeUpdate{WindowID: 1, Parent: r.Parent, HasParent: r.HasParent, Tree: core.BuildPainterTree(wt, leaf, h.s), Bounds: nb})
	h.w.Step()
	pt, ok := h.w.PainterTree(1)
	require.True(t, ok)
	assert.Equal(t, wt.IDs(), pt.IDs())

	root := wt.RootID()
	r, _, nb = h.ui.Rebuild(root, h.s)
	assert.False(t, r.HasParent)
	h.w.Send(MergeUpdate{WindowID: 1, Tree: core.BuildPainterTree(wt, root, h.s), Bounds: nb})
	h.w.Step()
	pt, _ = h.w.PainterTree(1)
	assert.Equal(t, root, pt.RootID())
	assert.Equal(t, wt.IDs(), pt.IDs())
	assert.NotContains(t, pt.IDs(), leaf)
}

func TestUpdateStateAndBounds(t *testing.T) {
	h := newHarness(t, rectPainter{})
	h.w.Step()
	leaf := h.leaf()
	h.w.Send(UpdateBounds{WindowID: 1, Bounds: map[element.ID]core.Bounds{
		leaf: {Global: math32.R2(5, 5, 10, 5), Local: math32.R2(5, 5, 10, 5)},
	}})
	h.w.Send(UpdateState{WindowID: 1, Painters: map[element.ID]*core.PainterElement{
		leaf: {Painter: rectPainter{}, State: pulse{Events: []string{"x"}}},
	}})
	h.rec.Reset()
	h.w.Step()
	pt, _ := h.w.PainterTree(1)
	n := pt.Node(leaf)
	assert.Equal(t, math32.R2(5, 5, 10, 5), n.LocalBounds)
	assert.Equal(t, pulse{Events: []string{"x"}}, n.Value.State)
	rects := h.rec.Find("Rect")
	require.Len(t, rects, 2)
	assert.Equal(t, math32.R2(10, 10, 20, 10), rects[1].Rect)
}

func TestPainterAnimation(t *testing.T) {
	h := newHarness(t, pulsePainter{})
	h.w.Step()
	_, painters := h.w.Animators()
	assert.Equal(t, 1, painters.Len())
	pt, _ := h.w.PainterTree(1)
	leaf := h.leaf()
	assert.Equal(t, []string{"Start(1)"}, pt.Node(leaf).Value.State.(pulse).Events)

	h.now = h.now.Add(500 * time.Millisecond)
	h.w.Step()
	h.now = h.now.Add(500 * time.Millisecond)
	h.w.Step()
	h.w.Step()
	assert.Equal(t, []string{"Start(1)", "Update(1, 0.500)", "End(1)"}, pt.Node(leaf).Value.State.(pulse).Events)
	assert.Equal(t, 0, painters.Len())
}

func TestWidgetAnimationEvents(t *testing.T) {
	h := newHarness(t, rectPainter{})
	leaf := h.leaf()
	h.w.Send(AnimationRequests{WindowID: 1, Element: leaf, Requests: []animate.Request{{Kind: animate.Widget, ID: 3, Duration: time.Second}}})
	h.w.Step()
	evs := h.w.Events().Drain()
	require.Len(t, evs, 1)
	assert.Equal(t, system.WindowID(1), evs[0].WindowID)
	assert.Equal(t, []animate.ElementEvent{{Element: leaf, Event: animate.Event{Type: animate.Start, ID: 3}}}, evs[0].Events)
}

func TestRemoveWindow(t *testing.T) {
	h := newHarness(t, pulsePainter{})
	h.w.Step()
	h.w.Send(RemoveWindow{WindowID: 1})
	h.w.Send(UpdateBounds{WindowID: 1})
	h.w.Step()
	_, ok := h.w.PainterTree(1)
	assert.False(t, ok)
	_, painters := h.w.Animators()
	assert.Equal(t, 0, painters.Len())
}

type failingBlitter struct {
	calls int
}

func (f *failingBlitter) CopyToTexture(pixels []byte, width, height int) error {
	f.calls++
	return errors.New("surface lost")
}

func (f *failingBlitter) Rebuild(cfg system.SurfaceConfig) error { return nil }

func TestPresent(t *testing.T) {
	app := offscreen.New()
	win, err := app.NewWindow(system.NewWindowOptions{Width: 8, Height: 4})
	require.NoError(t, err)
	bl, err := win.NewBlitter()
	require.NoError(t, err)

	s := state.New()
	ui := core.NewUserInterface(win.ID(), &box{painter: rectPainter{}}, win.Size(), 1)
	ui.Build(s)
	w := NewWorker(WithBackground(color.RGBA{0, 0, 255, 255}))
	w.Send(AddWindowPainter{WindowID: win.ID(), Tree: core.BuildPainterTree(ui.Tree(), ui.Tree().RootID(), s), Size: win.Size(), DPI: 1, Blitter: bl})
	w.Step()

	frame := bl.(*offscreen.Blitter).LastFrame()
	require.NotNil(t, frame)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, frame.RGBAAt(3, 2))

	fb := &failingBlitter{}
	w.Send(AddWindowPainter{WindowID: 9, Tree: core.BuildPainterTree(ui.Tree(), ui.Tree().RootID(), s), Size: win.Size(), DPI: 1, Blitter: fb})
	w.Step()
	w.Step()
	assert.Equal(t, 2, fb.calls, "failed presents are retried")
}

func TestRunStopsWhenClosed(t *testing.T) {
	w := NewWorker(WithFrameRate(1000))
	w.Close()
	assert.NoError(t, w.Run(context.Background()))

	w = NewWorker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
}
