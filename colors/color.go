// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the floating-point RGB color type used
// throughout fancybar, along with parsing of color names and hex strings.
package colors

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an opaque color in display (sRGB) space, with each
// channel nominally in the range [0, 1].
type Color struct {
	R, G, B float64
}

// New returns a new [Color] with the given channel values.
func New(r, g, b float64) Color {
	return Color{r, g, b}
}

// FromRGB255 returns the [Color] for the given 8-bit channel values.
func FromRGB255(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// FromColor converts the given standard library color to a [Color],
// un-premultiplying it by its alpha value. Fully transparent colors
// become black.
func FromColor(c color.Color) Color {
	if fc, ok := c.(Color); ok {
		return fc
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	fa := float64(a)
	return Color{float64(r) / fa, float64(g) / fa, float64(b) / fa}
}

// RGBA implements [color.Color]. The color is always fully opaque,
// and out-of-range channels are clamped.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamped()
	r = uint32(cc.R*65535.0 + 0.5)
	g = uint32(cc.G*65535.0 + 0.5)
	b = uint32(cc.B*65535.0 + 0.5)
	return r, g, b, 0xFFFF
}

// RGB255 returns the color as 8-bit channel values.
func (c Color) RGB255() (r, g, b uint8) {
	cc := c.Clamped()
	r = uint8(cc.R*255.0 + 0.5)
	g = uint8(cc.G*255.0 + 0.5)
	b = uint8(cc.B*255.0 + 0.5)
	return
}

// AsRGBA returns the color as a [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements [fmt.Stringer] using [Color.Hex].
func (c Color) String() string {
	return c.Hex()
}

// IsValid returns whether every channel of the color is in [0, 1].
func (c Color) IsValid() bool {
	return c.R >= 0 && c.R <= 1 && c.G >= 0 && c.G <= 1 && c.B >= 0 && c.B <= 1
}

// Clamped returns the color with each channel clamped to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Array returns the channels of the color as an array.
func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

// AlmostEqual returns whether every channel of the two colors
// differs by no more than the given tolerance.
func (c Color) AlmostEqual(o Color, tol float64) bool {
	return math.Abs(c.R-o.R) <= tol && math.Abs(c.G-o.G) <= tol && math.Abs(c.B-o.B) <= tol
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// Clamp clamps every color in the given slice in place and returns it.
func Clamp(cs []Color) []Color {
	for i, c := range cs {
		cs[i] = c.Clamped()
	}
	return cs
}

// Hexes returns the hex strings of the given colors.
func Hexes(cs []Color) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = c.Hex()
	}
	return res
}
