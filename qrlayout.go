// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrlayout computes the structural layout of QR code symbols
and renders it onto an abstract drawing surface.

The package resolves the smallest QR version whose byte mode
capacity fits a piece of text, derives an integer module size from
the surface width, and draws the fixed patterns of the symbol: the
three finder patterns, the surviving alignment patterns, placeholder
marks along the timing strips and a mode indicator.  It does not
encode data.  No data, error correction, mask or format bits are
produced; the result is the deterministic skeleton a full encoder
builds upon, not a scannable symbol.

All drawing goes through the Surface interface, a rectangle fill and
line stroke capability owned by the caller.  Package ggcanvas adapts
a gg drawing context; the Raster type in this package is a one bit
per pixel reference surface.
*/
package qrlayout // import "github.com/unixdj/qrlayout"

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrlayout/version"
)

// ErrSurface is returned by Render when no surface is supplied.
var ErrSurface = errors.New("qrlayout: surface unavailable")

// A Surface is a drawing capability owned by the caller.  Render
// borrows it exclusively for the duration of one call; concurrent
// renders must not share a surface.  Coordinates are pixels with the
// origin in the top left corner.  FillRect fills and Stroke strokes
// in whatever colour the caller configured.
type Surface interface {
	Width() int              // pixel extent of the drawing area
	FillRect(x, y, w, h int) // fill an axis-aligned rectangle
	MoveTo(x, y int)         // start a line at (x, y)
	LineTo(x, y int)         // extend the line to (x, y)
	Stroke()                 // stroke pending lines
	SetLineWidth(px int)     // set the stroke width
}

// Options configures Render and PlanLayout.  The zero value renders
// in binary (byte) mode at level L, exact versions only, with no
// debug grid.
type Options struct {
	Debug     bool          // draw the module grid before the patterns
	Mode      version.Mode  // encoding mode
	Level     version.Level // error correction level
	Estimated bool          // allow estimated versions above version.MaxExact
	Latin1    bool          // measure capacity after Latin-1 transcoding
}

// A SizeError reports a surface too narrow for the symbol's module
// grid: no positive integer module size fits.
type SizeError struct {
	Width   int // surface width in pixels
	Modules int // required modules per side
}

func (e SizeError) Error() string {
	return fmt.Sprintf("qrlayout: %d pixel surface too small for %d modules",
		e.Width, e.Modules)
}

// A CharsetError reports text that cannot be transcoded to Latin-1.
type CharsetError string

func (e CharsetError) Error() string {
	return fmt.Sprintf("qrlayout: non-latin-1 string %#q", string(e))
}

// BlockSize returns the module size in pixels for a surface of the
// given width: the largest b such that b*modules does not exceed
// width.  Every module then maps to an integer pixel square with no
// fractional seams, shrinking the rendered width by up to modules-1
// pixels.  A block size of zero is a SizeError, never a return
// value.
func BlockSize(width, modules int) (int, error) {
	if modules > 0 && width >= modules {
		return width / modules, nil
	}
	return 0, SizeError{width, modules}
}

// A Layout is a resolved version spec and module size for a single
// render call.  It is created per call and not retained.
type Layout struct {
	Spec  version.Spec
	Block int // module size in pixels
}

// textLength returns the capacity-relevant length of text in bytes.
func textLength(text string, o *Options) (int, error) {
	if !o.Latin1 {
		return len(text), nil
	}
	t, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return 0, CharsetError(text)
	}
	return len(t), nil
}

// PlanLayout resolves the layout for rendering text on a surface of
// the given width.  It performs every validation Render does and
// draws nothing.
func PlanLayout(width int, text string, o Options) (Layout, error) {
	n, err := textLength(text, &o)
	if err != nil {
		return Layout{}, err
	}
	sel := version.Select
	if o.Estimated {
		sel = version.SelectEstimated
	}
	s, err := sel(n, o.Mode, o.Level)
	if err != nil {
		return Layout{}, err
	}
	b, err := BlockSize(width, s.Modules)
	if err != nil {
		return Layout{}, err
	}
	return Layout{s, b}, nil
}

// Render draws the structural patterns of the smallest symbol
// fitting text onto s.  All validation precedes the first drawing
// call: when Render fails, nothing has been drawn.
func Render(s Surface, text string, o Options) error {
	if s == nil {
		return ErrSurface
	}
	l, err := PlanLayout(s.Width(), text, o)
	if err != nil {
		return err
	}
	logger().Debug("layout resolved",
		"version", l.Spec.Version,
		"level", o.Level,
		"modules", l.Spec.Modules,
		"block", l.Block,
		"estimated", l.Spec.Estimated)
	if o.Debug {
		drawGrid(s, l.Spec.Modules, l.Block)
	}
	place(s, &l, o.Mode)
	return nil
}
