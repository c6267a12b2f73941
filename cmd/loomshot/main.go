// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command loomshot runs the counter demo headless, clicks its Count
// button a number of times and writes the final frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"time"

	"loomui.org/core/app"
	"loomui.org/core/base/errors"
	"loomui.org/core/base/logx"
	"loomui.org/core/config"
	"loomui.org/core/core"
	"loomui.org/core/events"
	"loomui.org/core/render"
	"loomui.org/core/state"
	"loomui.org/core/system"
	"loomui.org/core/system/driver/offscreen"
	"loomui.org/core/widgets"
)

type counter struct {
	app.DelegateBase
}

func (counter) CreateUIState() *state.UIState {
	s := state.New()
	s.Register("counter_value", state.IntVar(0))
	return s
}

func (counter) HandleMessage(msg core.Message, s *state.UIState) {
	v, _ := s.Get("counter_value")
	n, _ := v.Int()
	switch msg.Name {
	case "count":
		s.Set("counter_value", state.IntVar(n+1))
	case "reset":
		s.Set("counter_value", state.IntVar(0))
	}
}

func main() {
	cfgPath := flag.String("config", "", "TOML configuration file")
	out := flag.String("o", "loomshot.png", "output PNG file")
	clicks := flag.Int("clicks", 3, "number of clicks on the Count button")
	dpi := flag.Float64("dpi", 1, "device pixel ratio of the offscreen window")
	flag.Parse()

	if err := run(*cfgPath, *out, *clicks, float32(*dpi)); err != nil {
		fmt.Fprintf(os.Stderr, "loomshot: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, out string, clicks int, dpi float32) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Open(cfgPath); err != nil {
			return err
		}
	}
	logx.Init(cfg.Level(), nil)

	sys := offscreen.New(offscreen.WithDevicePixelRatio(dpi))
	w := render.NewWorker(render.WithBackground(cfg.BackgroundColor()))
	a := app.New(sys, counter{}, app.WithConfig(cfg), app.WithWorker(w))

	count := widgets.NewButton("Count", core.NewMessage("count"))
	a.RequestWindow(app.WindowRequest{Builder: func(s *state.UIState) core.Widget {
		box := widgets.NewAnimatedColorBox(time.Second, color.RGBA{0xe0, 0x40, 0x40, 0xff}, color.RGBA{0x40, 0x40, 0xe0, 0xff})
		return widgets.NewColumn(
			widgets.NewRow(count, widgets.NewButton("Reset", core.NewMessage("reset"))),
			widgets.NewLabel(state.Binding("counter_value")),
			widgets.NewSizedBox(0, 40, box),
		)
	}})
	settle(a)
	wins := a.Windows()
	if len(wins) == 0 {
		return fmt.Errorf("no window was opened")
	}
	win := wins[0]
	ui, _ := a.UI(win)

	id, ok := ui.Find(func(o core.Widget) bool { return o == count })
	if !ok {
		return fmt.Errorf("count button not found")
	}
	b := ui.Tree().Node(id).GlobalBounds
	pos := b.Pos.Add(b.Size.MulScalar(0.5)).MulScalar(dpi)
	for range clicks {
		sys.Push(system.CursorMoved{WindowID: win, Pos: pos})
		sys.Push(system.MouseInput{WindowID: win, Button: events.Left, Pressed: true})
		sys.Push(system.MouseInput{WindowID: win, Button: events.Left})
		settle(a)
	}
	slog.Info("loomshot: rendered", "frames", w.Frames(), "clicks", clicks)

	ow, ok := sys.Window(win)
	if !ok {
		return fmt.Errorf("%v vanished", win)
	}
	bl, ok := ow.Blitter()
	if !ok {
		return fmt.Errorf("%v has no blitter", win)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() { errors.Log(f.Close()) }()
	if err := png.Encode(f, bl.LastFrame()); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}
	a.Quit()
	settle(a)
	return nil
}

// settle runs the loop until it is idle, then renders one frame.
func settle(a *app.Application) {
	for a.RunOnce() {
	}
	a.Worker().Step()
}
