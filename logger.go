// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlayout

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records.  Enabled returns
// false so the caller skips message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger.  Accessed atomically so that
// SetLogger can race with rendering from other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() { loggerPtr.Store(slog.New(nopHandler{})) }

func logger() *slog.Logger { return loggerPtr.Load() }

// SetLogger configures the package logger.  By default qrlayout
// produces no log output.  Render reports resolved layouts at
// [slog.LevelDebug].  Pass nil to restore the silent default.
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}
