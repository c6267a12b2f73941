// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"sync"

	"loomui.org/core/math32"
	"loomui.org/core/system"
)

// Window is the [system.Window] implementation on the offscreen platform.
type Window struct {
	app     *App
	id      system.WindowID
	title   string
	size    math32.Vector2
	dpi     float32
	blitter *Blitter
}

var _ system.Window = (*Window)(nil)

func (w *Window) ID() system.WindowID       { return w.id }
func (w *Window) Title() string             { return w.title }
func (w *Window) Size() math32.Vector2      { return w.size }
func (w *Window) DevicePixelRatio() float32 { return w.dpi }

// NewBlitter returns the in-memory blitter of the window.
func (w *Window) NewBlitter() (system.Blitter, error) {
	if w.blitter == nil {
		w.blitter = &Blitter{cfg: system.SurfaceConfig{Width: int(w.size.X), Height: int(w.size.Y)}}
	}
	return w.blitter, nil
}

// Blitter returns the blitter of the window, if one was created.
func (w *Window) Blitter() (*Blitter, bool) {
	return w.blitter, w.blitter != nil
}

func (w *Window) Close() error {
	w.app.removeWindow(w.id)
	return nil
}

// Blitter keeps the last presented frame in memory. It is written by
// the render worker and may be read from any goroutine.
type Blitter struct {
	mu     sync.Mutex
	pixels []byte
	width  int
	height int
	frames int
	cfg    system.SurfaceConfig
}

var _ system.Blitter = (*Blitter)(nil)

func (b *Blitter) CopyToTexture(pixels []byte, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pixels = append(b.pixels[:0], pixels...)
	b.width, b.height = width, height
	b.frames++
	return nil
}

func (b *Blitter) Rebuild(cfg system.SurfaceConfig) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = cfg
	return nil
}

// Frames returns the number of frames presented.
func (b *Blitter) Frames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// Config returns the current surface configuration.
func (b *Blitter) Config() system.SurfaceConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// LastFrame returns the last presented frame as an RGBA image,
// or nil if nothing was presented yet.
func (b *Blitter) LastFrame() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frames == 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i := 0; i+3 < len(b.pixels) && i+3 < len(img.Pix); i += 4 {
		img.Pix[i+0] = b.pixels[i+2]
		img.Pix[i+1] = b.pixels[i+1]
		img.Pix[i+2] = b.pixels[i+0]
		img.Pix[i+3] = b.pixels[i+3]
	}
	return img
}
