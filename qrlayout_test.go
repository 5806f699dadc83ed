// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlayout

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrlayout/version"
)

func TestBlockSize(t *testing.T) {
	for _, tc := range []struct {
		width, modules, block int
	}{
		{21, 21, 1},
		{41, 21, 1},
		{42, 21, 2},
		{100, 21, 4},
		{420, 21, 20},
		{25, 25, 1},
		{1 << 14, 177, 92},
	} {
		b, err := BlockSize(tc.width, tc.modules)
		require.NoError(t, err)
		assert.Equal(t, tc.block, b, "BlockSize(%d, %d)",
			tc.width, tc.modules)
		assert.LessOrEqual(t, b*tc.modules, tc.width)
		assert.Less(t, tc.width-b*tc.modules, tc.modules)
	}
}

func TestBlockSizeError(t *testing.T) {
	for _, tc := range []struct{ width, modules int }{
		{20, 21},
		{0, 21},
		{5, 25},
		{100, 0},
	} {
		_, err := BlockSize(tc.width, tc.modules)
		var se SizeError
		require.ErrorAs(t, err, &se, "BlockSize(%d, %d)",
			tc.width, tc.modules)
		assert.Equal(t, SizeError{tc.width, tc.modules}, se)
	}
}

func TestPlanLayout(t *testing.T) {
	l, err := PlanLayout(420, "hello, world", Options{Level: version.Q})
	require.NoError(t, err)
	assert.Equal(t, version.Version(1), l.Spec.Version)
	assert.Equal(t, 21, l.Spec.Modules)
	assert.Equal(t, 20, l.Block)

	// 20 bytes no longer fit version 1 at level L.
	l, err = PlanLayout(100, strings.Repeat("a", 20), Options{})
	require.NoError(t, err)
	assert.Equal(t, version.Version(2), l.Spec.Version)
	assert.Equal(t, 4, l.Block)
}

func TestPlanLayoutLatin1(t *testing.T) {
	// 18 ASCII bytes plus a two byte UTF-8 rune: 20 bytes raw,
	// 19 after Latin-1 transcoding, right at the version 1
	// level L boundary.
	text := strings.Repeat("a", 18) + "é"
	l, err := PlanLayout(100, text, Options{})
	require.NoError(t, err)
	assert.Equal(t, version.Version(2), l.Spec.Version)

	l, err = PlanLayout(100, text, Options{Latin1: true})
	require.NoError(t, err)
	assert.Equal(t, version.Version(1), l.Spec.Version)

	_, err = PlanLayout(100, "日本語", Options{Latin1: true})
	var ce CharsetError
	require.ErrorAs(t, err, &ce)
}

func TestPlanLayoutEstimated(t *testing.T) {
	text := strings.Repeat("a", 300)
	_, err := PlanLayout(1000, text, Options{})
	var fe version.FitError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 300, fe.Len)

	l, err := PlanLayout(1000, text, Options{Estimated: true})
	require.NoError(t, err)
	assert.True(t, l.Spec.Estimated)
	assert.Greater(t, l.Spec.Version, version.MaxExact)
}

// countingSurface records drawing calls.
type countingSurface struct {
	width int
	calls int
}

func (s *countingSurface) Width() int            { return s.width }
func (s *countingSurface) FillRect(_, _, _, _ int) { s.calls++ }
func (s *countingSurface) MoveTo(_, _ int)       { s.calls++ }
func (s *countingSurface) LineTo(_, _ int)       { s.calls++ }
func (s *countingSurface) Stroke()               { s.calls++ }
func (s *countingSurface) SetLineWidth(int)      { s.calls++ }

func TestRenderNilSurface(t *testing.T) {
	err := Render(nil, "hello", Options{})
	require.ErrorIs(t, err, ErrSurface)
}

// A failing Render call must leave the surface untouched.
func TestRenderValidatesFirst(t *testing.T) {
	s := &countingSurface{width: 10}
	err := Render(s, "hello", Options{})
	var se SizeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, SizeError{10, 21}, se)
	assert.Zero(t, s.calls)

	s = &countingSurface{width: 1000}
	err = Render(s, strings.Repeat("a", 300), Options{})
	var fe version.FitError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, s.calls)

	err = Render(s, "hello", Options{Mode: version.Mode(2)})
	var me version.ModeError
	require.ErrorAs(t, err, &me)
	assert.Zero(t, s.calls)
}

func TestRenderIdempotent(t *testing.T) {
	for _, o := range []Options{{}, {Debug: true}} {
		r := NewRaster(42)
		require.NoError(t, Render(r, "hello", o))
		once := append([]byte(nil), r.Bitmap...)
		require.NoError(t, Render(r, "hello", o))
		assert.Equal(t, once, r.Bitmap, "debug %v", o.Debug)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)
	require.NoError(t, Render(NewRaster(21), "hello", Options{}))
	assert.Contains(t, buf.String(), "layout resolved")
	assert.Contains(t, buf.String(), "version=1")

	buf.Reset()
	SetLogger(nil)
	require.NoError(t, Render(NewRaster(21), "hello", Options{}))
	assert.Empty(t, buf.String())
}
