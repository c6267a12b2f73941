// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"loomui.org/core/animate"
	"loomui.org/core/core"
	"loomui.org/core/math32"
	"loomui.org/core/paint"
	"loomui.org/core/state"
)

// colorBoxAnimation is the painter animation id of [AnimatedColorBox].
const colorBoxAnimation animate.ID = 1

// AnimatedColorBox fills its area with a color moving through Colors
// over Duration. The animation runs on the render worker and starts
// whenever the box is mounted.
type AnimatedColorBox struct {
	core.WidgetBase
	Colors   []color.RGBA
	Duration time.Duration
}

// ColorBoxState is the state of an [AnimatedColorBox].
type ColorBoxState struct {
	Phase float32
}

// NewAnimatedColorBox returns a color box cycling through colors once
// over d.
func NewAnimatedColorBox(d time.Duration, colors ...color.RGBA) *AnimatedColorBox {
	return &AnimatedColorBox{Colors: colors, Duration: d}
}

func (b *AnimatedColorBox) State(s *state.UIState) any { return ColorBoxState{} }

func (b *AnimatedColorBox) Painter(s *state.UIState) core.Painter {
	return &ColorBoxPainter{Colors: b.Colors, Duration: b.Duration}
}

// ColorBoxPainter is the painter of an [AnimatedColorBox].
type ColorBoxPainter struct {
	Colors   []color.RGBA
	Duration time.Duration
}

// Mounted requests the color animation.
func (p *ColorBoxPainter) Mounted(ctx *core.RenderCtx) {
	ctx.RequestAnimation(colorBoxAnimation, p.Duration)
}

// AnimationEvent records the phase of the animation in the snapshot.
func (p *ColorBoxPainter) AnimationEvent(ev animate.Event, s any) any {
	st := core.StateAs[ColorBoxState](s)
	st.Phase = math32.Clamp(ev.Phase, 0, 1)
	return st
}

func (p *ColorBoxPainter) Paint(ctx *core.PaintCtx, c paint.Canvas) {
	st := core.StateAs[ColorBoxState](ctx.State())
	c.DrawRect(math32.RectFromSize(ctx.Size()), paint.FillPaint(ColorAt(p.Colors, st.Phase)))
}

// ColorAt returns the color at phase along colors, blending linearly in
// RGB between neighbors: phase 0 is the first color and 1 the last.
func ColorAt(colors []color.RGBA, phase float32) color.RGBA {
	n := len(colors)
	switch {
	case n == 0:
		return color.RGBA{}
	case n == 1 || phase <= 0:
		return colors[0]
	case phase >= 1:
		return colors[n-1]
	}
	pos := phase * float32(n-1)
	i := int(math32.Floor(pos))
	t := pos - float32(i)
	if i >= n-1 {
		return colors[n-1]
	}
	if t == 0 {
		return colors[i]
	}
	a, b := colors[i], colors[i+1]
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), float64(t)).RGB255()
	return color.RGBA{r, g, bl, uint8(math32.Round(math32.Lerp(float32(a.A), float32(b.A), t)))}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
