// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"log/slog"

	"github.com/chewxy/math32"

	"cogentcore.org/fancybar/base/ordmap"
	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colormap"
	"cogentcore.org/fancybar/legend"
)

// TotalBarWidth is the width, in category units, shared by
// all bars of a group.
const TotalBarWidth = 0.8

// Options are the options for building a chart [Layout].
type Options struct {
	// Pairs are the available color pairs.
	Pairs colormap.ColorPairs

	// PairIndices are the indices of the color pairs used for the
	// categories, in order of first appearance. Nil means 0, 1, 2, ...
	PairIndices []int

	// Styles are the styles used for the bars, in order of first
	// appearance. Nil means alternating [colormap.Hatch] and
	// [colormap.Gradient].
	Styles []colormap.Style

	// GroupNames is whether to label each group.
	GroupNames bool

	// BarNames is whether to label each bar.
	BarNames bool

	// Legend is whether to build a legend of the colors and styles.
	Legend bool

	// MaxLegendStyles is the maximum number of styles shown in each
	// legend handle.
	MaxLegendStyles int
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{
		Pairs:           colormap.ColorPairs{Palette: colormap.DefaultPalette},
		GroupNames:      true,
		BarNames:        true,
		Legend:          true,
		MaxLegendStyles: 2,
	}
}

// Segment is one value of a category drawn as a rectangle along a bar.
type Segment struct {
	Group, Bar, Category string

	// Left is where the segment starts along the value axis.
	Left float32

	// Value is the length of the segment.
	Value float32

	// Y is the center of the bar on the category axis.
	Y float32

	Color colors.Color
}

// Label is a text label anchored at a point in data coordinates.
type Label struct {
	Text string
	X, Y float32
}

// Layout is a chart reduced to positioned, colored primitives in data
// coordinates: X along the value axis, Y along the category axis with
// the first group at the smallest Y, drawn at the top.
type Layout struct {
	Groups, Bars, Categories []string

	// BarWidth is the thickness of each bar on the category axis.
	BarWidth float32

	Segments []Segment

	// BarLabels are placed at the end of each bar.
	BarLabels []Label

	// GroupTicks are placed at the center of each group on the
	// category axis; their X is unused.
	GroupTicks []Label

	Handles []*legend.Handle

	// Colormaps are the resampled colors of each bar, by group and bar name.
	Colormaps map[string]map[string][]colors.Color

	// XMin, XMax, YMin and YMax are the data extent, including bar thickness.
	XMin, XMax, YMin, YMax float32
}

type builder struct {
	c          *Chart
	opts       Options
	rs         *colormap.Resampler
	pairByCat  *ordmap.Map[string, int]
	styleByBar map[string]colormap.Style
	l          *Layout
}

// Build lays out the given chart with the given options, resampling
// colormaps with rs (nil means the default resampler). The chart must
// pass [Chart.Validate].
func Build(c *Chart, opts Options, rs *colormap.Resampler) (*Layout, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if rs == nil {
		rs = colormap.New(nil)
	}
	b := &builder{c: c, opts: opts, rs: rs}
	if err := b.assign(); err != nil {
		return nil, err
	}
	if err := b.colormaps(); err != nil {
		return nil, err
	}
	b.segments()
	if opts.Legend {
		if err := b.handles(); err != nil {
			return nil, err
		}
	}
	slog.Debug("chart: built layout", "groups", len(b.l.Groups), "bars", len(b.l.Bars), "segments", len(b.l.Segments))
	return b.l, nil
}

// assign maps categories to color pairs and bars to styles.
func (b *builder) assign() error {
	bars, cats := b.c.BarNames(), b.c.CategoryNames()
	b.l = &Layout{Groups: b.c.GroupNames(), Bars: bars, Categories: cats}

	idxs := b.opts.PairIndices
	if idxs == nil {
		idxs = make([]int, len(cats))
		for i := range idxs {
			idxs[i] = i
		}
	}
	if len(idxs) < len(cats) {
		return fmt.Errorf("chart: got only %d color pair indices for %d categories: %w", len(idxs), len(cats), ErrInsufficientColorIndices)
	}
	styles := b.opts.Styles
	if styles == nil {
		styles = colormap.Alternate(colormap.Hatch, colormap.Gradient, len(bars))
	}
	if len(styles) < len(bars) {
		return fmt.Errorf("chart: got only %d styles for %d bars: %w", len(styles), len(bars), ErrInsufficientStyles)
	}

	b.pairByCat = ordmap.New[string, int]()
	catByPair := ordmap.New[int, string]()
	for i, cat := range cats {
		p := idxs[i]
		if prev, ok := catByPair.ValueByKeyTry(p); ok {
			return fmt.Errorf("chart: categories %q and %q both use color pair %d: %w", prev, cat, p, ErrDuplicateColorIndices)
		}
		catByPair.Add(p, cat)
		b.pairByCat.Add(cat, p)
	}
	b.styleByBar = make(map[string]colormap.Style, len(bars))
	for i, bar := range bars {
		b.styleByBar[bar] = styles[i]
	}
	return nil
}

// colormaps resamples one colormap per bar, with one step per value
// of each of its categories, in global category order.
func (b *builder) colormaps() error {
	b.l.Colormaps = make(map[string]map[string][]colors.Color, len(b.c.Groups))
	for _, g := range b.c.Groups {
		cms := make(map[string][]colors.Color, len(g.Bars))
		for _, bar := range g.Bars {
			var steps colormap.Steps
			steps.Indexed = true
			for _, kv := range b.pairByCat.Order {
				if cat, ok := bar.Category(kv.Key); ok {
					steps.Set(kv.Value, len(cat.Values))
				}
			}
			cm, err := b.rs.Resample(steps, b.opts.Pairs, b.styleByBar[bar.Name])
			if err != nil {
				return fmt.Errorf("chart: group %q, bar %q: %w", g.Name, bar.Name, err)
			}
			cms[bar.Name] = cm
		}
		b.l.Colormaps[g.Name] = cms
	}
	return nil
}

// segments positions the values of every bar.
func (b *builder) segments() {
	l := b.l
	nb := len(l.Bars)
	l.BarWidth = TotalBarWidth / float32(max(nb, 1))
	for gi := range b.c.Groups {
		g := &b.c.Groups[gi]
		for bi, bname := range l.Bars {
			y := float32(gi) + l.BarWidth*float32(bi)
			start := float32(0)
			if bar, ok := g.Bar(bname); ok {
				cm := l.Colormaps[g.Name][bname]
				ci := 0
				for _, cname := range l.Categories {
					cat, ok := bar.Category(cname)
					if !ok {
						continue
					}
					for _, v := range cat.Values {
						val := float32(v)
						l.Segments = append(l.Segments, Segment{
							Group: g.Name, Bar: bname, Category: cname,
							Left: start, Value: val, Y: y, Color: cm[ci],
						})
						l.XMin = math32.Min(l.XMin, math32.Min(start, start+val))
						l.XMax = math32.Max(l.XMax, math32.Max(start, start+val))
						start += val
						ci++
					}
				}
			}
			if b.opts.BarNames {
				l.BarLabels = append(l.BarLabels, Label{Text: bname, X: start, Y: y})
			}
		}
		if b.opts.GroupNames {
			l.GroupTicks = append(l.GroupTicks, Label{Text: g.Name, Y: float32(gi) + float32(nb-1)/2*l.BarWidth})
		}
	}
	hw := l.BarWidth / 2
	l.YMin = -hw
	l.YMax = float32(max(len(b.c.Groups)-1, 0)) + l.BarWidth*float32(max(nb-1, 0)) + hw
}

// handles builds one legend handle per category, showing its color pair
// in the first styles used.
func (b *builder) handles() error {
	styles := b.opts.Styles
	if styles == nil {
		styles = colormap.Alternate(colormap.Hatch, colormap.Gradient, len(b.l.Bars))
	}
	n := len(styles)
	if b.opts.MaxLegendStyles > 0 {
		n = min(n, b.opts.MaxLegendStyles)
	}
	styles = styles[:n]
	for _, kv := range b.pairByCat.Order {
		src, dst, err := b.rs.Pair(b.opts.Pairs, kv.Value)
		if err != nil {
			return fmt.Errorf("chart: legend for %q: %w", kv.Key, err)
		}
		b.l.Handles = append(b.l.Handles, legend.NewHandle(b.rs.Interpolator, src, dst, kv.Key, styles...))
	}
	return nil
}
