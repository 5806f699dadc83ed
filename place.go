// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlayout

import "github.com/unixdj/qrlayout/version"

// place draws every structural pattern of the layout: finder
// patterns in the top left, top right and bottom left corners (the
// bottom right has none, letting readers detect orientation), timing
// placeholder marks, surviving alignment patterns and the mode
// indicator.  All drawing is rectangle fills, so placing twice
// leaves the raster unchanged.
func place(s Surface, l *Layout, mode version.Mode) {
	mc, b := l.Spec.Modules, l.Block
	finder(s, b, 0, 0)
	finder(s, b, mc-7, 0)
	finder(s, b, 0, mc-7)
	timingMarks(s, b, mc)
	alignPatterns(s, b, mc, l.Spec.Align)
	modeIndicator(s, b, mc, mode.Indicator())
}

// fill fills a rectangle given in module coordinates.
func fill(s Surface, b, x, y, w, h int) {
	s.FillRect(x*b, y*b, w*b, h*b)
}

// finder draws a 7x7 finder pattern with its top left corner at
// module (x, y): four one module thick edges and a centered 3x3
// core.
func finder(s Surface, b, x, y int) {
	fill(s, b, x, y, 7, 1)     // top
	fill(s, b, x, y+6, 7, 1)   // bottom
	fill(s, b, x, y+1, 1, 5)   // left
	fill(s, b, x+6, y+1, 1, 5) // right
	fill(s, b, x+2, y+2, 3, 3) // core
}

// timingMarks draws single module marks at even offsets along row
// and column 6 between the finder patterns, standing in for the
// timing patterns.
func timingMarks(s Surface, b, mc int) {
	n := (mc - 14 - 1) / 2
	for i := 0; i < n; i++ {
		fill(s, b, 8+2*i, 6, 1, 1)
		fill(s, b, 6, 8+2*i, 1, 1)
	}
}

// inFinderZone reports whether an alignment center (x, y) falls
// inside one of the three finder exclusion zones.
func inFinderZone(x, y, mc int) bool {
	return x <= 8 && y <= 8 ||
		x >= mc-8 && y <= 8 ||
		x <= 8 && y >= mc-8
}

// alignmentCenters returns the surviving alignment pattern centers:
// the Cartesian self-product of the axis, minus candidates inside a
// finder zone, deduplicated.
func alignmentCenters(mc int, axis []int) [][2]int {
	seen := make(map[[2]int]bool, len(axis)*len(axis))
	var cc [][2]int
	for _, x := range axis {
		for _, y := range axis {
			c := [2]int{x, y}
			if seen[c] || inFinderZone(x, y, mc) {
				continue
			}
			seen[c] = true
			cc = append(cc, c)
		}
	}
	return cc
}

// alignPatterns draws a 5x5 hollow square with a single center
// module around each surviving alignment center.
func alignPatterns(s Surface, b, mc int, axis []int) {
	for _, c := range alignmentCenters(mc, axis) {
		x, y := c[0]-2, c[1]-2
		fill(s, b, x, y, 5, 1)     // top
		fill(s, b, x, y+4, 5, 1)   // bottom
		fill(s, b, x, y+1, 1, 3)   // left
		fill(s, b, x+4, y+1, 1, 3) // right
		fill(s, b, c[0], c[1], 1, 1)
	}
}

// modeIndicator draws the 4 bit mode indicator as a 2x2 block in the
// bottom right corner, most significant bit at the top left, filled
// where the bit is set.
func modeIndicator(s Surface, b, mc int, ind byte) {
	for i, p := range [4][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if ind>>(3-i)&1 != 0 {
			fill(s, b, mc-2+p[0], mc-2+p[1], 1, 1)
		}
	}
}

// drawGrid strokes the module grid over the symbol extent for
// debugging.  It is never required for a correct layout.
func drawGrid(s Surface, mc, b int) {
	s.SetLineWidth(1)
	ext := mc * b
	for i := 0; i < mc; i++ {
		s.MoveTo(i*b, 0)
		s.LineTo(i*b, ext)
		s.Stroke()
		s.MoveTo(0, i*b)
		s.LineTo(ext, i*b)
		s.Stroke()
	}
}
