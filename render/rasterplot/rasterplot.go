// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rasterplot renders chart layouts as raster images
// (PNG, JPEG or BMP).
//
// Shapes are drawn at a multiple of the output size and scaled down,
// which smooths the edges of thin segments and gradient slices.
// Text is drawn afterwards at the output size.
package rasterplot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"cogentcore.org/fancybar/base/iox/imagex"
	"cogentcore.org/fancybar/chart"
	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/legend"
)

// Renderer renders a [chart.Layout] to a raster image.
type Renderer struct {
	// Format is the encoding of the image.
	Format imagex.Formats

	// Style has the pixel metrics of the page at output size.
	Style chart.PageStyle

	// Handlers draws the legend entries.
	Handlers *legend.HandlerMap

	// Supersample is the factor shapes are drawn larger by before
	// being scaled down to the output size; values below 1 mean 1.
	Supersample int

	// Background is the page color.
	Background colors.Color

	// Face is the font face used for all text.
	Face font.Face
}

// New returns a new renderer with the default page style and the
// legend handles registered.
func New() *Renderer {
	m := legend.NewHandlerMap()
	RegisterLegend(m)
	return &Renderer{
		Format:      imagex.PNG,
		Style:       chart.DefaultPageStyle(),
		Handlers:    m,
		Supersample: 2,
		Background:  colors.White,
		Face:        basicfont.Face7x13,
	}
}

// RegisterLegend registers the legend drawers the PNG renderer
// supports in m.
func RegisterLegend(m *legend.HandlerMap) {
	legend.RegisterHandles(m)
}

var _ chart.Renderer = (*Renderer)(nil)

// Render writes the layout as an image of the given size to w,
// encoded in [Renderer.Format].
func (r *Renderer) Render(w io.Writer, l *chart.Layout, size image.Point) error {
	img, err := r.Image(l, size)
	if err != nil {
		return err
	}
	return imagex.Write(img, w, r.Format)
}

// Image draws the layout into a new image of the given size.
func (r *Renderer) Image(l *chart.Layout, size image.Point) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("rasterplot: invalid image size %v", size)
	}
	if r.Handlers == nil {
		return nil, fmt.Errorf("rasterplot: no legend handlers")
	}
	k := max(r.Supersample, 1)
	ks := float32(k)
	big := size.Mul(k)
	p := l.Place(big, r.Style.Scaled(ks))

	cv := &canvas{img: image.NewRGBA(image.Rectangle{Max: big})}
	draw.Draw(cv.img, cv.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	for _, seg := range l.Segments {
		b := p.SegmentBox(seg)
		cv.FillRect(b.X, b.Y, b.W, b.H, seg.Color)
	}
	axis := p.PX(0)
	cv.FillRect(axis-ks/2, p.Plot.Y, ks, p.Plot.H, axisColor)
	for _, row := range p.Legend {
		if err := r.Handlers.Draw(cv, row.Handle, row.Box); err != nil {
			return nil, err
		}
	}

	var img *image.RGBA
	if k == 1 {
		img = cv.img
	} else {
		img = clone.AsRGBA(transform.Resize(cv.img, size.X, size.Y, transform.Linear))
	}

	face := r.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	t := &text{img: img, face: face}
	for _, lb := range l.BarLabels {
		x := math32.Max(p.PX(lb.X), axis) / ks
		t.draw(lb.Text, x+4, p.PY(lb.Y)/ks, labelColor, false)
	}
	for _, tk := range l.GroupTicks {
		t.draw(tk.Text, p.Plot.X/ks-6, p.PY(tk.Y)/ks, tickColor, true)
	}
	for _, row := range p.Legend {
		t.draw(row.Handle.GetLabel(), row.LabelX/ks, row.LabelY/ks, tickColor, false)
	}
	return img, nil
}

var (
	axisColor  = colors.FromRGB255(0x88, 0x88, 0x88)
	labelColor = colors.FromRGB255(0x44, 0x44, 0x44)
	tickColor  = colors.FromRGB255(0x22, 0x22, 0x22)
)

// canvas is a [legend.Canvas] drawing onto an image.
type canvas struct {
	img *image.RGBA
}

func (c *canvas) FillRect(x, y, w, h float32, col colors.Color) {
	r := image.Rect(
		int(math32.Round(x)), int(math32.Round(y)),
		int(math32.Round(x+w)), int(math32.Round(y+h)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col.AsRGBA()), image.Point{}, draw.Src)
}

type text struct {
	img  *image.RGBA
	face font.Face
}

// draw draws s with its left edge (or right edge, if alignEnd) at x,
// centered vertically on y.
func (t *text) draw(s string, x, y float32, c color.Color, alignEnd bool) {
	d := &font.Drawer{Dst: t.img, Src: image.NewUniform(c), Face: t.face}
	if alignEnd {
		x -= float32(d.MeasureString(s).Ceil())
	}
	m := t.face.Metrics()
	base := y + float32(m.Ascent.Ceil()-m.Descent.Ceil())/2
	d.Dot = fixed.P(int(math32.Round(x)), int(math32.Round(base)))
	d.DrawString(s)
}
