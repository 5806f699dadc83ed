// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggcanvas adapts a gg drawing context to the qrlayout
// Surface interface.
package ggcanvas // import "github.com/unixdj/qrlayout/ggcanvas"

import (
	"github.com/gogpu/gg"

	"github.com/unixdj/qrlayout"
)

// A Canvas is a qrlayout.Surface drawing on a gg.Context.  The
// Surface interface has no error returns, so drawing errors are
// deferred: check Err after rendering.
type Canvas struct {
	dc  *gg.Context
	err error
}

var _ qrlayout.Surface = (*Canvas)(nil)

// New returns a Canvas drawing on dc.  The caller keeps ownership of
// dc and configures its colours; integer module rectangles map to
// exact pixel squares.
func New(dc *gg.Context) *Canvas { return &Canvas{dc: dc} }

func (c *Canvas) Width() int { return c.dc.Width() }

func (c *Canvas) FillRect(x, y, w, h int) {
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.keep(c.dc.Fill())
}

func (c *Canvas) MoveTo(x, y int) { c.dc.MoveTo(float64(x), float64(y)) }

func (c *Canvas) LineTo(x, y int) { c.dc.LineTo(float64(x), float64(y)) }

func (c *Canvas) Stroke() { c.keep(c.dc.Stroke()) }

func (c *Canvas) SetLineWidth(px int) { c.dc.SetLineWidth(float64(px)) }

// Err returns the first deferred drawing error, if any.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) keep(err error) {
	if c.err == nil {
		c.err = err
	}
}
