// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot renders chart layouts as SVG documents.
package svgplot

import (
	"fmt"
	"image"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/chewxy/math32"

	"cogentcore.org/fancybar/chart"
	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/legend"
)

// subpixel is the number of SVG user units per pixel. The document
// uses a view box this much larger than its size, so that the integer
// coordinates of the svg package can resolve thin gradient slices.
const subpixel = 10

// Renderer renders a [chart.Layout] to SVG.
type Renderer struct {
	// Style has the pixel metrics of the page.
	Style chart.PageStyle

	// Handlers draws the legend entries.
	Handlers *legend.HandlerMap

	// FontSize is the size of all text, in pixels.
	FontSize float32

	// Background is the page color; nil means transparent.
	Background *colors.Color
}

// New returns a new renderer with the default page style and the
// legend handles registered.
func New() *Renderer {
	m := legend.NewHandlerMap()
	RegisterLegend(m)
	return &Renderer{Style: chart.DefaultPageStyle(), Handlers: m, FontSize: 12}
}

// RegisterLegend registers the legend drawers the SVG renderer
// supports in m.
func RegisterLegend(m *legend.HandlerMap) {
	legend.RegisterHandles(m)
}

var _ chart.Renderer = (*Renderer)(nil)

// Render writes the layout as an SVG document of the given size to w.
func (r *Renderer) Render(w io.Writer, l *chart.Layout, size image.Point) error {
	p := l.Place(size, r.Style)
	cw := &countWriter{w: w}
	s := svg.New(cw)
	s.Startview(size.X, size.Y, 0, 0, size.X*subpixel, size.Y*subpixel)
	s.Gstyle(fmt.Sprintf("font-size:%dpx;font-family:Helvetica,Arial,sans-serif", px(r.FontSize)))
	if r.Background != nil {
		s.Rect(0, 0, size.X*subpixel, size.Y*subpixel, "fill:"+r.Background.Hex())
	}
	cv := canvas{s}

	for _, seg := range l.Segments {
		b := p.SegmentBox(seg)
		cv.FillRect(b.X, b.Y, b.W, b.H, seg.Color)
	}

	axis := p.PX(0)
	s.Line(px(axis), px(p.Plot.Y), px(axis), px(p.Plot.Y+p.Plot.H), "stroke:#888;stroke-width:10")

	for _, lb := range l.BarLabels {
		x := math32.Max(p.PX(lb.X), axis)
		s.Text(px(x+4), px(p.PY(lb.Y)), lb.Text, `dy=".3em" fill="#444"`)
	}
	for _, tk := range l.GroupTicks {
		s.Text(px(p.Plot.X-6), px(p.PY(tk.Y)), tk.Text, `text-anchor="end" dy=".3em" fill="#222"`)
	}

	for _, row := range p.Legend {
		if r.Handlers == nil {
			return fmt.Errorf("svgplot: no legend handlers")
		}
		if err := r.Handlers.Draw(cv, row.Handle, row.Box); err != nil {
			return err
		}
		s.Text(px(row.LabelX), px(row.LabelY), row.Handle.GetLabel(), `dy=".3em" fill="#222"`)
	}
	s.Gend()
	s.End()
	return cw.err
}

// canvas is a [legend.Canvas] drawing onto an SVG document.
type canvas struct {
	s *svg.SVG
}

func (c canvas) FillRect(x, y, w, h float32, col colors.Color) {
	x0, y0 := px(x), px(y)
	x1, y1 := px(x+w), px(y+h)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	c.s.Rect(x0, y0, x1-x0, y1-y0, "fill:"+col.Hex())
}

// px converts pixels to SVG user units.
func px(v float32) int {
	return int(math32.Round(v * subpixel))
}

// countWriter remembers the first write error, as the svg
// package does not report them.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(b []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(b)
	c.n += int64(n)
	c.err = err
	return n, err
}
