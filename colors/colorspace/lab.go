// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nolab

package colorspace

import (
	"github.com/lucasb-eyer/go-colorful"

	"cogentcore.org/fancybar/colors"
)

func init() {
	newPerceptual = func() Space { return Lab{} }
}

// Lab is the CIELAB [Space] under the D65 white point, with L* in
// [0, 100] and a*, b* in roughly [-128, 127].
type Lab struct{}

// labScale converts go-colorful's unit-scaled Lab to the usual ranges.
const labScale = 100

func (Lab) Name() string { return "lab" }

func (Lab) ToUniform(cs []colors.Color) []Uniform {
	us := make([]Uniform, len(cs))
	for i, c := range cs {
		l, a, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Lab()
		us[i] = Uniform{l * labScale, a * labScale, b * labScale}
	}
	return us
}

func (Lab) ToRGB(us []Uniform) []colors.Color {
	cs := make([]colors.Color, len(us))
	for i, u := range us {
		c := colorful.Lab(u[0]/labScale, u[1]/labScale, u[2]/labScale)
		cs[i] = colors.Color{R: c.R, G: c.G, B: c.B}
	}
	return cs
}
