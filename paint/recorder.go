// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image/color"

	"loomui.org/core/math32"
)

// Op is one recorded drawing operation. Rect is in surface coordinates:
// the transform current at the time of the call has been applied.
type Op struct {
	Name  string
	Rect  math32.Rect
	Text  string
	Paint Paint
}

func (o Op) String() string {
	if o.Text != "" {
		return fmt.Sprintf("%s %v %q", o.Name, o.Rect, o.Text)
	}
	return fmt.Sprintf("%s %v", o.Name, o.Rect)
}

type transform struct {
	offset math32.Vector2
	scale  math32.Vector2
}

func (t transform) apply(r math32.Rect) math32.Rect {
	return math32.Rect{
		Pos:  math32.Vec2(r.Pos.X*t.scale.X+t.offset.X, r.Pos.Y*t.scale.Y+t.offset.Y),
		Size: math32.Vec2(r.Size.X*t.scale.X, r.Size.Y*t.scale.Y),
	}
}

// Recorder is a [Canvas] that records drawing operations instead of
// rasterizing them. It is used to test painters and the paint traversal.
type Recorder struct {
	Ops []Op

	width, height int
	cur           transform
	stack         []transform
}

// NewRecorder returns a recorder of the given physical size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height, cur: transform{scale: math32.Vec2(1, 1)}}
}

func (r *Recorder) add(name string, rect math32.Rect, text string, p Paint) {
	r.Ops = append(r.Ops, Op{Name: name, Rect: r.cur.apply(rect), Text: text, Paint: p})
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.cur)
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		panic("paint: Restore without Save")
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(v math32.Vector2) {
	r.cur.offset = r.cur.offset.Add(math32.Vec2(v.X*r.cur.scale.X, v.Y*r.cur.scale.Y))
}

func (r *Recorder) Scale(s math32.Vector2) {
	r.cur.scale = math32.Vec2(r.cur.scale.X*s.X, r.cur.scale.Y*s.Y)
}

func (r *Recorder) Clear(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Name: "Clear", Rect: math32.R2(0, 0, float32(r.width), float32(r.height)), Paint: FillPaint(c)})
}

func (r *Recorder) DrawRect(rect math32.Rect, p Paint) {
	r.add("Rect", rect, "", p)
}

func (r *Recorder) DrawRoundedRect(rect math32.Rect, rx, ry float32, p Paint) {
	r.add("RoundedRect", rect, "", p)
}

func (r *Recorder) DrawCircle(center math32.Vector2, radius float32, p Paint) {
	r.add("Circle", math32.Rect{Pos: center.Sub(math32.Vec2(radius, radius)), Size: math32.Vec2(2*radius, 2*radius)}, "", p)
}

func (r *Recorder) DrawString(rect math32.Rect, text string, f Font, p Paint) {
	r.add("String", rect, text, p)
}

func (r *Recorder) ClipRect(rect math32.Rect) {
	r.add("Clip", rect, "", Paint{})
}

// Pixels returns false: a recorder has no pixel storage.
func (r *Recorder) Pixels() ([]byte, bool) {
	return nil, false
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Texts returns the text of every DrawString call, in order.
func (r *Recorder) Texts() []string {
	var ts []string
	for _, o := range r.Ops {
		if o.Name == "String" {
			ts = append(ts, o.Text)
		}
	}
	return ts
}

// Find returns the recorded operations with the given name.
func (r *Recorder) Find(name string) []Op {
	var ops []Op
	for _, o := range r.Ops {
		if o.Name == name {
			ops = append(ops, o)
		}
	}
	return ops
}
