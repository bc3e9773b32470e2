// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgplot

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	svg "github.com/ajstarks/svgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fancybar/chart"
	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/legend"
)

func testLayout(t *testing.T) *chart.Layout {
	c := &chart.Chart{Groups: []chart.Group{
		{Name: "first", Bars: []chart.Bar{
			{Name: "alpha", Categories: []chart.Category{{Name: "x", Values: []float64{1, 2}}, {Name: "y", Values: []float64{3}}}},
			{Name: "beta", Categories: []chart.Category{{Name: "y", Values: []float64{2, 2}}}},
		}},
	}}
	l, err := chart.Build(c, chart.DefaultOptions(), nil)
	require.NoError(t, err)
	return l
}

func TestRender(t *testing.T) {
	l := testLayout(t)
	r := New()
	bg := colors.White
	r.Background = &bg
	var b bytes.Buffer
	require.NoError(t, r.Render(&b, l, image.Point{640, 320}))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `viewBox="0 0 6400 3200"`)
	assert.Contains(t, out, "fill:#ffffff")
	for _, s := range []string{"first", "alpha", "beta", ">x<", ">y<"} {
		assert.Contains(t, out, s)
	}
	// x uses the first pair of tab20 and starts with its source color.
	assert.Contains(t, out, "fill:"+l.Colormaps["first"]["alpha"][0].Hex())
	assert.Contains(t, out, "fill:#1f77b4")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestRenderMissingHandlers(t *testing.T) {
	r := New()
	r.Handlers = legend.NewHandlerMap()
	err := r.Render(&bytes.Buffer{}, testLayout(t), image.Point{640, 320})
	assert.ErrorContains(t, err, "no drawer registered")

	r.Handlers = nil
	err = r.Render(&bytes.Buffer{}, testLayout(t), image.Point{640, 320})
	assert.Error(t, err)
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderWriteError(t *testing.T) {
	err := New().Render(failWriter{}, testLayout(t), image.Point{640, 320})
	assert.ErrorIs(t, err, errWrite)
}

func TestCanvasSkipsEmpty(t *testing.T) {
	var b bytes.Buffer
	cv := canvas{svg.New(&b)}
	cv.FillRect(1, 1, 0.01, 5, colors.Red)
	assert.NotContains(t, b.String(), "rect")
	cv.FillRect(1, 1, 2, 5, colors.Red)
	assert.Contains(t, b.String(), `width="20"`)
	assert.Contains(t, b.String(), "fill:#ff0000")
}
