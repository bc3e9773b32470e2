// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colormap"
)

type rect struct {
	x, y, w, h float32
	c          colors.Color
}

type recorder struct {
	rects []rect
}

func (r *recorder) FillRect(x, y, w, h float32, c colors.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func TestHandle(t *testing.T) {
	h := NewHandle(colormap.Interpolator{}, colors.Red, colors.Blue, "cat1", colormap.Hatch, colormap.Gradient)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []int{5, 100}, h.Steps)
	assert.Equal(t, "cat1", h.GetLabel())
	assert.Equal(t, Kind, h.Kind())

	sw, err := h.Swatch(0)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{colors.Red, colors.Blue, colors.Red, colors.Blue, colors.Red}, sw)

	sws, err := h.Swatches()
	require.NoError(t, err)
	require.Len(t, sws, 2)
	assert.Len(t, sws[1], 100)
	assert.True(t, sws[1][0].AlmostEqual(colors.Red, 1e-4))
	assert.True(t, sws[1][99].AlmostEqual(colors.Blue, 1e-4))

	require.NoError(t, h.SetSteps(3, 7))
	sws, err = h.Swatches()
	require.NoError(t, err)
	assert.Len(t, sws[0], 3)
	assert.Len(t, sws[1], 7)
	assert.ErrorIs(t, h.SetSteps(1), ErrSteps)

	h.Steps = h.Steps[:1]
	_, err = h.Swatch(0)
	assert.ErrorIs(t, err, ErrSteps)
}

func TestHandlerMap(t *testing.T) {
	m := NewHandlerMap()
	h := NewHandle(colormap.Interpolator{}, colors.Red, colors.Blue, "a", colormap.Hatch, colormap.Hatch)
	require.NoError(t, h.SetSteps(2, 4))
	cv := &recorder{}

	err := m.Draw(cv, h, Box{0, 0, 8, 10})
	assert.Error(t, err)

	RegisterHandles(m)
	_, ok := m.Drawer(Kind)
	assert.True(t, ok)
	require.NoError(t, m.Draw(cv, h, Box{10, 20, 8, 10}))
	require.Len(t, cv.rects, 6)
	assert.Equal(t, rect{10, 20, 4, 5, colors.Red}, cv.rects[0])
	assert.Equal(t, rect{14, 20, 4, 5, colors.Blue}, cv.rects[1])
	assert.Equal(t, rect{10, 25, 2, 5, colors.Red}, cv.rects[2])
	assert.Equal(t, rect{16, 25, 2, 5, colors.Blue}, cv.rects[5])
}

func TestDrawHandleWrongEntry(t *testing.T) {
	err := DrawHandle(&recorder{}, other{}, Box{})
	assert.Error(t, err)
}

type other struct{}

func (other) Kind() string     { return "other" }
func (other) GetLabel() string { return "" }
