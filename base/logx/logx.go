// Copyright (c) 2026, The Loom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the process-wide structured logger.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity level that the user has selected for
// which logging messages should be shown. Messages at levels at or
// above this level will be shown. The default is [slog.LevelWarn].
var UserLevel = func() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(slog.LevelWarn)
	return lv
}()

// LevelFromString returns the [slog.Level] for one of
// "debug", "info", "warn" or "error" (case-insensitive).
// The empty string is treated as "warn".
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("logx: unknown log level %q", s)
}

// Init sets [UserLevel] to the given level and installs a text handler
// writing to w (os.Stderr if nil) as the default slog logger.
func Init(level slog.Level, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	UserLevel.Set(level)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel})
	slog.SetDefault(slog.New(h))
}
