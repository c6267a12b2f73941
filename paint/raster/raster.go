// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a software [paint.Canvas] that renders into
// an in-memory RGBA image, for headless rendering and for uploading to a
// GPU surface through a blitter.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"loomui.org/core/math32"
	"loomui.org/core/paint"
)

type state struct {
	offset math32.Vector2
	scale  math32.Vector2
	clip   image.Rectangle
}

// Canvas is a CPU canvas backed by an [image.RGBA].
type Canvas struct {
	img   *image.RGBA
	cur   state
	stack []state
}

// New returns a transparent canvas of the given physical size.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{
		img: img,
		cur: state{scale: math32.Vec2(1, 1), clip: img.Bounds()},
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		panic("raster: Restore without Save")
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(v math32.Vector2) {
	c.cur.offset = c.cur.offset.Add(math32.Vec2(v.X*c.cur.scale.X, v.Y*c.cur.scale.Y))
}

func (c *Canvas) Scale(s math32.Vector2) {
	c.cur.scale = math32.Vec2(c.cur.scale.X*s.X, c.cur.scale.Y*s.Y)
}

// device maps a logical rectangle to device space.
func (c *Canvas) device(r math32.Rect) math32.Rect {
	return math32.Rect{
		Pos:  math32.Vec2(r.Pos.X*c.cur.scale.X+c.cur.offset.X, r.Pos.Y*c.cur.scale.Y+c.cur.offset.Y),
		Size: math32.Vec2(r.Size.X*c.cur.scale.X, r.Size.Y*c.cur.scale.Y),
	}
}

func (c *Canvas) Clear(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) ClipRect(r math32.Rect) {
	c.cur.clip = c.cur.clip.Intersect(c.device(r).ToRect())
}

func (c *Canvas) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.cur.clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) DrawRect(r math32.Rect, p paint.Paint) {
	d := c.device(r)
	if p.Style == paint.Fill {
		c.fill(d.ToRect(), p.Color)
		return
	}
	w := math32.Max(p.StrokeWidth*c.cur.scale.X, 1)
	mx := d.Max()
	c.fill(math32.Rect{Pos: d.Pos, Size: math32.Vec2(d.Size.X, w)}.ToRect(), p.Color)
	c.fill(math32.Rect{Pos: math32.Vec2(d.Pos.X, mx.Y-w), Size: math32.Vec2(d.Size.X, w)}.ToRect(), p.Color)
	c.fill(math32.Rect{Pos: d.Pos, Size: math32.Vec2(w, d.Size.Y)}.ToRect(), p.Color)
	c.fill(math32.Rect{Pos: math32.Vec2(mx.X-w, d.Pos.Y), Size: math32.Vec2(w, d.Size.Y)}.ToRect(), p.Color)
}

// coverage draws col through a mask computed by inside for the pixel
// centers of the device rectangle d.
func (c *Canvas) coverage(d math32.Rect, col color.RGBA, inside func(x, y float32) bool) {
	r := d.ToRect().Intersect(c.cur.clip)
	if r.Empty() {
		return
	}
	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if inside(float32(x)+0.5, float32(y)+0.5) {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	draw.DrawMask(c.img, r, image.NewUniform(col), image.Point{}, mask, r.Min, draw.Over)
}

func inRoundedRect(d math32.Rect, rx, ry float32, x, y float32) bool {
	mx := d.Max()
	if x < d.Pos.X || y < d.Pos.Y || x >= mx.X || y >= mx.Y {
		return false
	}
	if rx <= 0 || ry <= 0 {
		return true
	}
	cx := math32.Clamp(x, d.Pos.X+rx, mx.X-rx)
	cy := math32.Clamp(y, d.Pos.Y+ry, mx.Y-ry)
	dx := (x - cx) / rx
	dy := (y - cy) / ry
	return dx*dx+dy*dy <= 1
}

func (c *Canvas) DrawRoundedRect(r math32.Rect, rx, ry float32, p paint.Paint) {
	d := c.device(r)
	rx = math32.Min(rx*c.cur.scale.X, d.Size.X/2)
	ry = math32.Min(ry*c.cur.scale.Y, d.Size.Y/2)
	if p.Style == paint.Fill {
		c.coverage(d, p.Color, func(x, y float32) bool {
			return inRoundedRect(d, rx, ry, x, y)
		})
		return
	}
	w := math32.Max(p.StrokeWidth*c.cur.scale.X, 1)
	in := math32.Rect{Pos: d.Pos.Add(math32.Vec2(w, w)), Size: d.Size.Sub(math32.Vec2(2*w, 2*w))}
	c.coverage(d, p.Color, func(x, y float32) bool {
		return inRoundedRect(d, rx, ry, x, y) && !inRoundedRect(in, math32.Max(rx-w, 0), math32.Max(ry-w, 0), x, y)
	})
}

func (c *Canvas) DrawCircle(center math32.Vector2, radius float32, p paint.Paint) {
	d := c.device(math32.Rect{Pos: center.Sub(math32.Vec2(radius, radius)), Size: math32.Vec2(2*radius, 2*radius)})
	ctr := d.Center()
	rad := d.Size.X / 2
	inner := float32(-1)
	if p.Style == paint.Stroke {
		inner = rad - math32.Max(p.StrokeWidth*c.cur.scale.X, 1)
	}
	c.coverage(d, p.Color, func(x, y float32) bool {
		dx, dy := x-ctr.X, y-ctr.Y
		dd := dx*dx + dy*dy
		return dd <= rad*rad && (inner < 0 || dd > inner*inner)
	})
}

func (c *Canvas) DrawString(r math32.Rect, text string, f paint.Font, p paint.Paint) {
	d := c.device(r)
	clip := d.ToRect().Intersect(c.cur.clip)
	if clip.Empty() {
		return
	}
	face := paint.Face(f)
	dst := c.img.SubImage(clip).(*image.RGBA)
	dr := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(p.Color),
		Face: face,
		Dot:  fixed.P(int(math32.Round(d.Pos.X)), int(math32.Round(d.Pos.Y))+face.Metrics().Ascent.Ceil()),
	}
	dr.DrawString(text)
}

// Pixels returns a copy of the image in BGRA8 premultiplied order.
func (c *Canvas) Pixels() ([]byte, bool) {
	src := c.img.Pix
	out := make([]byte, len(src))
	for i := 0; i+3 < len(src); i += 4 {
		out[i+0] = src[i+2]
		out[i+1] = src[i+1]
		out[i+2] = src[i+0]
		out[i+3] = src[i+3]
	}
	return out, true
}
