// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlayout

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// A Raster is an in-memory one bit per pixel Surface.  It records
// rectangle fills and axis-aligned strokes and can write itself out
// as PBM, ASCII or UTF-8 half blocks.
type Raster struct {
	Bitmap []byte // 1 is set, 0 is clear
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	pen  [2]int   // current path position
	segs [][4]int // pending stroke segments
	lw   int      // stroke width in pixels
}

// NewRaster returns a cleared Raster of the given width.
func NewRaster(width int) *Raster {
	stride := (width + 7) / 8
	return &Raster{
		Bitmap: make([]byte, stride*width),
		Size:   width,
		Stride: stride,
		lw:     1,
	}
}

func (r *Raster) Width() int { return r.Size }

// Black reports whether the pixel at (x, y) is set.
func (r *Raster) Black(x, y int) bool {
	return 0 <= x && x < r.Size && 0 <= y && y < r.Size &&
		r.Bitmap[y*r.Stride+x/8]&(1<<uint(7&^x)) != 0
}

func (r *Raster) set(x, y int) {
	if 0 <= x && x < r.Size && 0 <= y && y < r.Size {
		r.Bitmap[y*r.Stride+x/8] |= 1 << uint(7&^x)
	}
}

// FillRect sets every pixel of the rectangle.  Pixels outside the
// raster are clipped.
func (r *Raster) FillRect(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			r.set(xx, yy)
		}
	}
}

func (r *Raster) MoveTo(x, y int) { r.pen = [2]int{x, y} }

func (r *Raster) LineTo(x, y int) {
	r.segs = append(r.segs, [4]int{r.pen[0], r.pen[1], x, y})
	r.pen = [2]int{x, y}
}

// SetLineWidth sets the stroke width, at least one pixel.
func (r *Raster) SetLineWidth(px int) { r.lw = max(px, 1) }

// Stroke rasterises pending segments as filled rectangles of the
// current line width.  Only axis-aligned segments are supported.
func (r *Raster) Stroke() {
	for _, s := range r.segs {
		x0, y0, x1, y1 := s[0], s[1], s[2], s[3]
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		switch {
		case y0 == y1:
			r.FillRect(x0, y0, x1-x0, r.lw)
		case x0 == x1:
			r.FillRect(x0, y0, r.lw, y1-y0)
		default:
			panic("qrlayout: diagonal stroke")
		}
	}
	r.segs = r.segs[:0]
}

// EncodePBM writes a Portable Bit Map image of the raster to w, for
// use with netpbm.
func (r *Raster) EncodePBM(w io.Writer) error {
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(r.Size)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	for n := 0; n+r.Stride <= len(r.Bitmap); n += r.Stride {
		if _, err := b.Write(r.Bitmap[n : n+r.Stride]); err != nil {
			return err
		}
	}
	return b.Flush()
}

// EncodeASCII writes the raster to w as '#' and ' ' characters, two
// per pixel to keep the aspect ratio on a terminal.
func (r *Raster) EncodeASCII(w io.Writer) error {
	b := make([]byte, 0, (r.Size*2+1)*r.Size)
	for y := 0; y < r.Size; y++ {
		for x := 0; x < r.Size; x++ {
			var p byte = ' '
			if r.Black(x, y) {
				p = '#'
			}
			b = append(b, p, p)
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}

// String renders the raster as UTF-8 half blocks, two pixel rows per
// text line.
func (r *Raster) String() string {
	var b strings.Builder
	b.Grow((r.Size + 1) * (r.Size + 1) / 2 * 3)
	for y := 0; y < r.Size; y += 2 {
		for x := 0; x < r.Size; x++ {
			n := 0
			if r.Black(x, y) {
				n = 2
			}
			if r.Black(x, y+1) {
				n++
			}
			b.WriteString([4]string{" ", "▄", "▀", "█"}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
