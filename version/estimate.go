// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package version

// Versions above MaxExact have no curated capacity figures.  The
// estimate below is exact about geometry: the number of modules
// taken by finder patterns with separators, timing patterns,
// alignment patterns and format and version information follows the
// standard, and so does the total codeword count derived from it.
// The split of codewords between data and checksum, and the block
// count, are scaled linearly from the version MaxExact column and
// diverge from the ISO tables.  Spec.Estimated is set on the result
// so callers can reject it where scan compatibility matters.

// estAlign returns the standard alignment center axis for version v:
// first center at 6, last at Modules-7, intermediate centers evenly
// spaced with an even step, remainder absorbed by the first gap.
func estAlign(v Version) []int {
	n := int(v)/7 + 2 // centers per axis
	last := v.Modules() - 7
	step := ((last-6+n-2)/(n-1) + 1) &^ 1
	axis := make([]int, n)
	axis[0] = 6
	for i := n - 1; i > 0; i-- {
		axis[i] = last - (n-1-i)*step
	}
	return axis
}

// estimate returns an estimated Spec for a version above MaxExact.
func estimate(v Version) Spec {
	axis := estAlign(v)
	mc := v.Modules()
	n := len(axis)
	// Function module budget: three 8x8 finder corners, two timing
	// strips, 5x5 alignment boxes (n*n centers minus the three finder
	// corners; boxes on the timing strips share 5 modules each),
	// format information with the dark module, and version
	// information, always present above version 6.
	function := 3*64 + 2*(mc-16) + (n*n-3)*25 - (n-2)*10 + 31 + 36
	words := (mc*mc - function) / 8
	s := Spec{
		Version:   v,
		Modules:   mc,
		Align:     axis,
		Estimated: true,
	}
	ref := &vtab[MaxExact]
	for l := L; l <= H; l++ {
		check := words * ref.check[l] / ref.words
		blocks := max(words*ref.blocks[l]/ref.words, 1)
		s.Level[l] = ecLevel(words, check, blocks)
	}
	return s
}
