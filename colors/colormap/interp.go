// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"

	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colorspace"
)

// Expander expands the color pair (a, b) into exactly steps colors.
type Expander func(a, b colors.Color, steps int) []colors.Color

// Interpolator expands color pairs using a color space for
// perceptual interpolation. The zero value uses [colorspace.Default].
type Interpolator struct {
	Space colorspace.Space
}

func (ip Interpolator) space() colorspace.Space {
	if ip.Space == nil {
		return colorspace.Default()
	}
	return ip.Space
}

// Gradient returns steps colors evenly spaced along the straight line
// from a to b in the uniform space, including both endpoints when
// steps >= 2. A single step yields just a, and steps <= 0 yields
// an empty slice. All channels are clamped to [0, 1].
func (ip Interpolator) Gradient(a, b colors.Color, steps int) []colors.Color {
	switch {
	case steps <= 0:
		return []colors.Color{}
	case steps == 1:
		return []colors.Color{a.Clamped()}
	}
	sp := ip.space()
	ends := sp.ToUniform([]colors.Color{a, b})
	us := make([]colorspace.Uniform, steps)
	for k := range 3 {
		for i, v := range vec.Linspace(ends[0][k], ends[1][k], steps) {
			us[i][k] = v
		}
	}
	return colors.Clamp(sp.ToRGB(us))
}

// Expander returns the expansion function for the given style.
func (ip Interpolator) Expander(s Style) (Expander, error) {
	switch s {
	case Gradient:
		return ip.Gradient, nil
	case Hatch:
		return ExpandHatch, nil
	}
	return nil, fmt.Errorf("colormap.Expander: %v: %w", s, ErrUnknownStyle)
}

// Expand expands the pair (a, b) into steps colors using the given style.
func (ip Interpolator) Expand(s Style, a, b colors.Color, steps int) ([]colors.Color, error) {
	ex, err := ip.Expander(s)
	if err != nil {
		return nil, err
	}
	return ex(a, b, steps), nil
}

// ExpandGradient is [Interpolator.Gradient] using [colorspace.Default].
func ExpandGradient(a, b colors.Color, steps int) []colors.Color {
	return Interpolator{}.Gradient(a, b, steps)
}

// ExpandHatch returns a, b, a, b, ... for exactly steps colors,
// without any color space conversion.
func ExpandHatch(a, b colors.Color, steps int) []colors.Color {
	return alternate(a, b, steps)
}

// alternate returns [a, b, a, b, a, ...] with n elements.
func alternate[T any](a, b T, n int) []T {
	res := make([]T, max(n, 0))
	for i := range res {
		if i%2 == 0 {
			res[i] = a
		} else {
			res[i] = b
		}
	}
	return res
}
