// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"

	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colorspace"
)

// Target determines with which color, and to what extent, each
// color of an unpaired palette is blended to produce its partner.
type Target struct {
	// Color is the target color of the blend.
	Color colors.Color

	// Opacity is the weight of the target color: the partner is
	// (1 - Opacity) * source + Opacity * Color, computed in the
	// uniform color space. It should be in [0, 1]; values outside
	// of that range are not rejected.
	Opacity float64
}

// DefaultTarget returns the default target: white at half opacity.
func DefaultTarget() Target {
	return Target{Color: colors.White, Opacity: 0.5}
}

// ParseTarget returns a target for the given color name or hex
// string and opacity.
func ParseTarget(color string, opacity float64) (Target, error) {
	c, err := colors.FromString(color)
	if err != nil {
		return Target{}, fmt.Errorf("colormap.ParseTarget: %w", err)
	}
	return Target{Color: c, Opacity: opacity}, nil
}

// Synthesize returns the partner of each source color blended with
// the target in the uniform space of ip, clamped to [0, 1].
// The sources are not modified.
func (ip Interpolator) Synthesize(sources []colors.Color, target Target) []colors.Color {
	sp := ip.space()
	src := sp.ToUniform(sources)
	tgt := sp.ToUniform([]colors.Color{target.Color})[0]
	w := target.Opacity
	for i, u := range src {
		for k := range u {
			src[i][k] = (1-w)*u[k] + w*tgt[k]
		}
	}
	return colors.Clamp(sp.ToRGB(src))
}

// Interleave returns 2N colors for N sources: each source color at an
// even index, followed by its synthesized partner (see
// [Interpolator.Synthesize]) at the next odd index.
func (ip Interpolator) Interleave(sources []colors.Color, target Target) []colors.Color {
	partners := ip.Synthesize(sources, target)
	res := make([]colors.Color, 0, 2*len(sources))
	for i, c := range sources {
		res = append(res, c, partners[i])
	}
	return res
}

// Synthesize is [Interpolator.Synthesize] in the given space.
func Synthesize(sp colorspace.Space, sources []colors.Color, target Target) []colors.Color {
	return Interpolator{Space: sp}.Synthesize(sources, target)
}

// Interleave is [Interpolator.Interleave] in the given space.
func Interleave(sp colorspace.Space, sources []colors.Color, target Target) []colors.Color {
	return Interpolator{Space: sp}.Interleave(sources, target)
}
