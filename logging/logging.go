// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package logging implements the structured logger of golam
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level is a log level
type Level slog.Level

// levels
const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// String returns the name of the level
func (o Level) String() string {
	return slog.Level(o).String()
}

// ParseLevel converts a name into a level; unknown names give LevelInfo
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	}
	return LevelInfo
}

// NewLogger returns a logger writing to w (stderr if nil) with a tint handler.
// Colours are only used when w is a terminal
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.Level(level),
		TimeFormat: "15:04:05",
		NoColor:    !terminal(w),
	}))
}

// WithLevel returns a logger writing through the handler of logger that drops
// records below level. The handler's own level still applies
func WithLevel(logger *slog.Logger, level Level) *slog.Logger {
	h := logger.Handler()
	if lh, ok := h.(*levelHandler); ok {
		h = lh.h
	}
	return slog.New(&levelHandler{level: slog.Level(level), h: h})
}

// levelHandler filters records of h by level
type levelHandler struct {
	level slog.Level
	h     slog.Handler
}

func (o *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= o.level && o.h.Enabled(ctx, level)
}

func (o *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return o.h.Handle(ctx, r)
}

func (o *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: o.level, h: o.h.WithAttrs(attrs)}
}

func (o *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: o.level, h: o.h.WithGroup(name)}
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return NewLogger(io.Discard, LevelError+4)
}

func terminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
