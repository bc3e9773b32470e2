// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"

	"github.com/chewxy/math32"

	"cogentcore.org/fancybar/legend"
)

// PageStyle has the pixel metrics used to place a [Layout] on a page.
type PageStyle struct {
	// Margin is the space around the whole page.
	Margin float32

	// TickWidth is the space left of the plot area for group labels.
	TickWidth float32

	// LabelWidth is the space reserved right of the longest bar for its label.
	LabelWidth float32

	// LegendWidth is the width of the legend column, including labels.
	LegendWidth float32

	// HandleSize is the size of each legend handle.
	HandleSize image.Point

	// LineHeight is the height of each legend row.
	LineHeight float32
}

// DefaultPageStyle returns the default page style.
func DefaultPageStyle() PageStyle {
	return PageStyle{
		Margin:      16,
		TickWidth:   80,
		LabelWidth:  60,
		LegendWidth: 140,
		HandleSize:  image.Point{32, 14},
		LineHeight:  22,
	}
}

// Scaled returns the style with all metrics multiplied by k.
func (st PageStyle) Scaled(k float32) PageStyle {
	return PageStyle{
		Margin:      st.Margin * k,
		TickWidth:   st.TickWidth * k,
		LabelWidth:  st.LabelWidth * k,
		LegendWidth: st.LegendWidth * k,
		HandleSize:  image.Point{int(math32.Round(float32(st.HandleSize.X) * k)), int(math32.Round(float32(st.HandleSize.Y) * k))},
		LineHeight:  st.LineHeight * k,
	}
}

// LegendRow is the placement of one legend entry.
type LegendRow struct {
	Handle *legend.Handle
	Box    legend.Box

	// LabelX and LabelY are where the label text starts,
	// at its vertical center.
	LabelX, LabelY float32
}

// Page is a [Layout] placed in a pixel rectangle.
type Page struct {
	Layout *Layout
	Size   image.Point

	// Plot is the plot area in pixels.
	Plot legend.Box

	Legend []LegendRow

	xmin, xmax, ymin, ymax float32
}

// Place places the layout in a page of the given size.
func (l *Layout) Place(size image.Point, st PageStyle) *Page {
	p := &Page{Layout: l, Size: size, xmin: l.XMin, xmax: l.XMax, ymin: l.YMin, ymax: l.YMax}
	if p.xmax-p.xmin == 0 {
		p.xmax = p.xmin + 1
	}
	if p.ymax-p.ymin == 0 {
		p.ymax = p.ymin + 1
	}
	x0 := st.Margin
	if len(l.GroupTicks) > 0 {
		x0 += st.TickWidth
	}
	x1 := float32(size.X) - st.Margin
	if len(l.BarLabels) > 0 {
		x1 -= st.LabelWidth
	}
	if len(l.Handles) > 0 {
		x1 -= st.LegendWidth
		lx := float32(size.X) - st.Margin - st.LegendWidth + 8
		for i, h := range l.Handles {
			y := st.Margin + float32(i)*st.LineHeight
			box := legend.Box{X: lx, Y: y, W: float32(st.HandleSize.X), H: float32(st.HandleSize.Y)}
			p.Legend = append(p.Legend, LegendRow{
				Handle: h, Box: box,
				LabelX: lx + box.W + 6, LabelY: y + box.H/2,
			})
		}
	}
	p.Plot = legend.Box{X: x0, Y: st.Margin, W: math32.Max(x1-x0, 1), H: math32.Max(float32(size.Y)-2*st.Margin, 1)}
	return p
}

// PX returns the pixel X coordinate of the data value x.
func (p *Page) PX(x float32) float32 {
	return p.Plot.X + (x-p.xmin)/(p.xmax-p.xmin)*p.Plot.W
}

// PY returns the pixel Y coordinate of the category position y;
// smaller positions are higher up on the page.
func (p *Page) PY(y float32) float32 {
	return p.Plot.Y + (y-p.ymin)/(p.ymax-p.ymin)*p.Plot.H
}

// SegmentBox returns the pixel rectangle of the given segment,
// with a non-negative width.
func (p *Page) SegmentBox(s Segment) legend.Box {
	hw := p.Layout.BarWidth / 2
	x0, x1 := p.PX(s.Left), p.PX(s.Left+s.Value)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := p.PY(s.Y-hw), p.PY(s.Y+hw)
	return legend.Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
