// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version implements QR version capacity tables and version
// selection.
//
// The table carries the exact ISO/IEC 18004 codeword figures for
// versions 1 through MaxExact.  Higher versions are served by a
// geometric estimate and marked as such; callers that care about
// scan compatibility should reject estimated specs.
package version // import "github.com/unixdj/qrlayout/version"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrLevel   = errors.New("qrlayout: invalid level")
	ErrVersion = errors.New("qrlayout: invalid version")
)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// ParseLevel parses a one letter level name in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.IndexByte("lmqhLMQH", s[0]); i >= 0 {
			return Level(i & 3), nil
		}
	}
	return 0, ErrLevel
}

// A Mode is a QR data encoding mode.  Only byte (binary) mode is
// modelled: the layout engine never encodes data, it needs only the
// mode's capacity unit and its 4 bit indicator.
type Mode int

const (
	Binary Mode = iota // byte mode, any data
)

func (m Mode) String() string {
	if m == Binary {
		return "binary"
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator for m.
func (m Mode) Indicator() byte {
	return 4 // byte mode
}

// ParseMode parses an encoding mode name.
func ParseMode(s string) (Mode, error) {
	if s == "binary" || s == "byte" {
		return Binary, nil
	}
	return 0, ModeError(-1)
}

// ModeError represents an unsupported encoding Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return fmt.Sprintf("qrlayout: unsupported encoding mode %s", Mode(e))
}

// A FitError reports data that fits no candidate version.  It
// carries the requested length, mode and level for diagnostics.
type FitError struct {
	Len   int
	Mode  Mode
	Level Level
}

func (e FitError) Error() string {
	return fmt.Sprintf("qrlayout: %d bytes of %s data fit no version at level %s",
		e.Len, e.Mode, e.Level)
}

// A Version represents a QR version.  A symbol with version v has
// 4v+17 modules on a side: the larger the version, the more data the
// symbol can store.
type Version int

const (
	MinVersion Version = 1  // minimum QR version
	MaxExact   Version = 10 // last version with exact table figures
	MaxVersion Version = 40 // maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Modules returns the number of modules on a side of a version v
// symbol.
func (v Version) Modules() int { return 21 + 4*(int(v)-1) }

// ECLevel describes the codeword and block layout of one error
// correction level within a version.
type ECLevel struct {
	Data          int // data codewords
	Check         int // error correction codewords
	Blocks        int // error correction blocks
	DataPerBlock  int // data codewords per block
	CheckPerBlock int // check codewords per block
}

// A Spec describes the structural layout of one QR version.  Specs
// are immutable: Lookup and Select return independent copies.
type Spec struct {
	Version   Version
	Modules   int   // modules per side, 21 + 4*(version-1)
	Align     []int // alignment pattern center axis
	Level     [4]ECLevel
	Estimated bool // capacity approximated, not ISO exact
}

// vtab carries the ISO/IEC 18004 figures for the curated versions:
// total codewords, check codewords and block count per level, and
// the alignment center axis.  Source: ISO/IEC 18004 tables 1 and 9,
// via the qrencode qrspec tables.
var vtab = [MaxExact + 1]struct {
	words  int
	check  [4]int
	blocks [4]int
	align  []int
}{
	1:  {26, [4]int{7, 10, 13, 17}, [4]int{1, 1, 1, 1}, nil},
	2:  {44, [4]int{10, 16, 22, 28}, [4]int{1, 1, 1, 1}, []int{6, 18}},
	3:  {70, [4]int{15, 26, 36, 44}, [4]int{1, 1, 2, 2}, []int{6, 22}},
	4:  {100, [4]int{20, 36, 52, 64}, [4]int{1, 2, 2, 4}, []int{6, 26}},
	5:  {134, [4]int{26, 48, 72, 88}, [4]int{1, 2, 4, 4}, []int{6, 30}},
	6:  {172, [4]int{36, 64, 96, 112}, [4]int{2, 4, 4, 4}, []int{6, 34}},
	7:  {196, [4]int{40, 72, 108, 130}, [4]int{2, 4, 6, 5}, []int{6, 22, 38}},
	8:  {242, [4]int{48, 88, 132, 156}, [4]int{2, 4, 6, 6}, []int{6, 24, 42}},
	9:  {292, [4]int{60, 110, 160, 192}, [4]int{2, 5, 8, 8}, []int{6, 26, 46}},
	10: {346, [4]int{72, 130, 192, 224}, [4]int{4, 5, 8, 8}, []int{6, 28, 50}},
}

// specs is the exact Spec table, built once at startup from vtab and
// never mutated.
var specs [MaxExact + 1]Spec

func init() {
	for v := MinVersion; v <= MaxExact; v++ {
		t := &vtab[v]
		s := Spec{
			Version: v,
			Modules: v.Modules(),
			Align:   t.align,
		}
		for l := L; l <= H; l++ {
			s.Level[l] = ecLevel(t.words, t.check[l], t.blocks[l])
		}
		specs[v] = s
	}
}

func ecLevel(words, check, blocks int) ECLevel {
	return ECLevel{
		Data:          words - check,
		Check:         check,
		Blocks:        blocks,
		DataPerBlock:  (words - check) / blocks,
		CheckPerBlock: check / blocks,
	}
}

// Lookup returns the Spec for version v: exact up to MaxExact,
// estimated above.  Lookup fails with ErrVersion outside
// [MinVersion, MaxVersion].
func Lookup(v Version) (Spec, error) {
	switch {
	case v < MinVersion || v > MaxVersion:
		return Spec{}, ErrVersion
	case v > MaxExact:
		return estimate(v), nil
	}
	s := specs[v]
	s.Align = append([]int(nil), s.Align...)
	return s, nil
}

// Select returns the smallest exact-table version whose byte mode
// capacity at the given level fits n bytes.  Capacity is
// non-decreasing in version for a fixed level, so the first version
// that fits is the smallest that fits.  Select fails with ModeError,
// ErrLevel or FitError; it has no side effects.
func Select(n int, mode Mode, level Level) (Spec, error) {
	return selectVersion(n, mode, level, MaxExact)
}

// SelectEstimated is Select continuing through estimated versions up
// to MaxVersion when no exact version fits.
func SelectEstimated(n int, mode Mode, level Level) (Spec, error) {
	return selectVersion(n, mode, level, MaxVersion)
}

func selectVersion(n int, mode Mode, level Level, last Version) (Spec, error) {
	if n < 0 {
		panic("qrlayout: negative length")
	}
	if mode != Binary {
		return Spec{}, ModeError(mode)
	}
	if level < L || level > H {
		return Spec{}, ErrLevel
	}
	for v := MinVersion; v <= last; v++ {
		s, _ := Lookup(v)
		if s.Level[level].Data >= n {
			return s, nil
		}
	}
	return Spec{}, FitError{n, mode, level}
}
