// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap resamples qualitative palettes into color sequences
// in which each color pair is expanded into an arbitrary number of
// colors, either by perceptual interpolation ([Gradient]) or by
// alternation ([Hatch]).
package colormap

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colorspace"
	"cogentcore.org/fancybar/colors/palettes"
)

// DefaultPalette is the palette used when [ColorPairs] names none.
const DefaultPalette = "tab20"

// ColorPairs determines the available color pairs.
type ColorPairs struct {
	// Palette is the name of a registered [palettes.Listed] palette.
	// It is ignored when Colors is set, and defaults to [DefaultPalette].
	Palette string

	// Colors is a literal palette used instead of Palette.
	Colors []colors.Color

	// Unpaired, if nil, means that successive palette colors are
	// already (source, destination) pairs. Otherwise every palette color
	// is paired with a partner synthesized from this target.
	Unpaired *Target
}

// Resampler builds resampled colormaps from palettes. The zero value
// uses [colorspace.Default] and [palettes.Default].
type Resampler struct {
	Interpolator

	// Palettes is the registry used to resolve palette names.
	Palettes *palettes.Registry
}

// New returns a new resampler using the given color space;
// nil means [colorspace.Default].
func New(sp colorspace.Space) *Resampler {
	return &Resampler{Interpolator: Interpolator{Space: sp}, Palettes: palettes.Default}
}

func (r *Resampler) registry() *palettes.Registry {
	if r.Palettes == nil {
		return palettes.Default
	}
	return r.Palettes
}

// Colors returns the paired palette described by cp: the resolved
// base palette, interleaved with synthesized partners if cp.Unpaired
// is set. Its length is always even.
func (r *Resampler) Colors(cp ColorPairs) ([]colors.Color, error) {
	cs := cp.Colors
	if len(cs) == 0 {
		name := cp.Palette
		if name == "" {
			name = DefaultPalette
		}
		p, err := r.registry().Get(name)
		if err != nil {
			return nil, err
		}
		if p.Kind != palettes.Listed {
			return nil, fmt.Errorf("colormap: expected a listed palette, got %q of kind %v: %w", p.Name, p.Kind, ErrConfiguration)
		}
		cs = p.Colors
	}
	if cp.Unpaired != nil {
		return r.Interleave(cs, *cp.Unpaired), nil
	}
	if len(cs)%2 != 0 {
		return nil, fmt.Errorf("colormap: paired palette needs an even number of colors, got %d: %w", len(cs), ErrConfiguration)
	}
	return slices.Clone(cs), nil
}

// Pair returns the source and destination colors of the pair
// with the given index.
func (r *Resampler) Pair(cp ColorPairs, idx int) (src, dst colors.Color, err error) {
	cs, err := r.Colors(cp)
	if err != nil {
		return
	}
	if idx < 0 || 2*idx+1 >= len(cs) {
		err = fmt.Errorf("colormap: pair %d requested, but palette provides %d pairs: %w", idx, len(cs)/2, ErrInsufficientPalette)
		return
	}
	return cs[2*idx], cs[2*idx+1], nil
}

// Resample returns a colormap in which each color pair selected by
// steps is expanded to its count with the given style. For an indexed
// list only the referenced pairs are used, in the order they are listed.
// Pairs with a count of zero contribute nothing. The result has
// exactly steps.Total() colors, all clamped to [0, 1].
func (r *Resampler) Resample(steps Steps, cp ColorPairs, style Style) ([]colors.Color, error) {
	expand, err := r.Expander(style)
	if err != nil {
		return nil, err
	}
	if err := steps.Validate(); err != nil {
		return nil, err
	}
	cs, err := r.Colors(cp)
	if err != nil {
		return nil, err
	}
	given, needed := len(cs)/2, steps.Needed()
	if given < needed {
		return nil, fmt.Errorf("colormap: need %d color pairs, but palette provides only %d: %w", needed, given, ErrInsufficientPalette)
	}
	res := make([]colors.Color, 0, steps.Total())
	for _, st := range steps.entries {
		if st.Count == 0 {
			continue
		}
		res = append(res, expand(cs[2*st.Pair], cs[2*st.Pair+1], st.Count)...)
	}
	slog.Debug("colormap: resampled", "style", style, "steps", steps.String(), "colors", len(res))
	return res, nil
}

// Resample is [Resampler.Resample] using [colorspace.Default]
// and [palettes.Default].
func Resample(steps Steps, cp ColorPairs, style Style) ([]colors.Color, error) {
	return New(nil).Resample(steps, cp, style)
}
