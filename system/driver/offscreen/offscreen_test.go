// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomui.org/core/math32"
	"loomui.org/core/system"
)

func TestNewWindow(t *testing.T) {
	a := New(WithDevicePixelRatio(2))
	w, err := a.NewWindow(system.NewWindowOptions{Title: "test", Width: 100, Height: 50})
	require.NoError(t, err)
	assert.Equal(t, "test", w.Title())
	assert.Equal(t, math32.Vec2(200, 100), w.Size())
	assert.Equal(t, float32(2), w.DevicePixelRatio())
	assert.Equal(t, 1, a.NumWindows())

	w2, err := a.NewWindow(system.NewWindowOptions{})
	require.NoError(t, err)
	assert.NotEqual(t, w.ID(), w2.ID())
	assert.Equal(t, math32.Vec2(1600, 1200), w2.Size())

	require.NoError(t, w.Close())
	assert.Equal(t, 1, a.NumWindows())
}

func TestPushQuit(t *testing.T) {
	a := New()
	a.Push(system.Focused{WindowID: 1, Focused: true})
	ev := <-a.Events()
	assert.Equal(t, system.Focused{WindowID: 1, Focused: true}, ev)

	a.Quit()
	a.Push(system.CloseRequested{WindowID: 1})
	_, ok := <-a.Events()
	assert.False(t, ok)
	_, err := a.NewWindow(system.NewWindowOptions{})
	assert.Error(t, err)
}

func TestBlitter(t *testing.T) {
	a := New()
	w, err := a.NewWindow(system.NewWindowOptions{Width: 2, Height: 1})
	require.NoError(t, err)
	bl, err := w.NewBlitter()
	require.NoError(t, err)
	b := bl.(*Blitter)
	assert.Nil(t, b.LastFrame())

	require.NoError(t, b.CopyToTexture([]byte{1, 2, 3, 255, 4, 5, 6, 255}, 2, 1))
	img := b.LastFrame()
	require.NotNil(t, img)
	assert.Equal(t, color.RGBA{3, 2, 1, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{6, 5, 4, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, 1, b.Frames())

	require.NoError(t, b.Rebuild(system.SurfaceConfig{Width: 4, Height: 4}))
	assert.Equal(t, system.SurfaceConfig{Width: 4, Height: 4}, b.Config())
}
