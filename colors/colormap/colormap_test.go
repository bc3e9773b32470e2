// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colorspace"
	"cogentcore.org/fancybar/colors/palettes"
)

const tol = 1e-4

var (
	red    = colors.Red
	blue   = colors.Blue
	green  = colors.Color{R: 0, G: 0.5, B: 0}
	yellow = colors.Color{R: 1, G: 1, B: 0}
	gray   = colors.Color{R: 0.5, G: 0.5, B: 0.5}
	black  = colors.Black
)

func assertColors(t *testing.T, want, got []colors.Color) {
	t.Helper()
	if !assert.Len(t, got, len(want)) {
		return
	}
	for i := range want {
		assert.True(t, want[i].AlmostEqual(got[i], tol), "%d: want %v, got %v", i, want[i], got[i])
	}
}

func assertValid(t *testing.T, cs []colors.Color) {
	t.Helper()
	for i, c := range cs {
		assert.True(t, c.IsValid(), "%d: %v out of range", i, c)
	}
}

func TestExpandLengths(t *testing.T) {
	pairs := [][2]colors.Color{{red, blue}, {black, colors.White}, {green, yellow}, {red, red}}
	for _, style := range StyleValues() {
		for _, p := range pairs {
			for steps := 1; steps <= 12; steps++ {
				cs, err := Interpolator{}.Expand(style, p[0], p[1], steps)
				require.NoError(t, err)
				assert.Len(t, cs, steps, "%v %v %d", style, p, steps)
				assertValid(t, cs)
			}
		}
	}
}

func TestGradient(t *testing.T) {
	assertColors(t, []colors.Color{red}, ExpandGradient(red, blue, 1))
	assert.Empty(t, ExpandGradient(red, blue, 0))
	assert.Empty(t, ExpandGradient(red, blue, -3))

	same := ExpandGradient(gray, gray, 6)
	assertColors(t, []colors.Color{gray, gray, gray, gray, gray, gray}, same)

	cs := ExpandGradient(red, blue, 2)
	assertColors(t, []colors.Color{red, blue}, cs)
}

func TestGradientIdentity(t *testing.T) {
	ip := Interpolator{Space: colorspace.Identity{}}
	cs := ip.Gradient(red, blue, 4)
	assertColors(t, []colors.Color{
		{R: 1, G: 0, B: 0},
		{R: 2.0 / 3, G: 0, B: 1.0 / 3},
		{R: 1.0 / 3, G: 0, B: 2.0 / 3},
		{R: 0, G: 0, B: 1},
	}, cs)
}

func TestGradientPerceptual(t *testing.T) {
	if !colorspace.Available() {
		t.Skip("perceptual color space not compiled in")
	}
	cs := ExpandGradient(black, colors.White, 5)
	us := colorspace.Default().ToUniform(cs)
	for i, u := range us {
		// equally spaced lightness along the neutral axis
		assert.InDelta(t, 25*float64(i), u[0], 0.05, "L* of %d", i)
	}
	mid := cs[2]
	assert.InDelta(t, mid.R, mid.G, tol)
	// L* 50 is darker than the RGB midpoint gray
	assert.Greater(t, mid.R, 0.4)
	assert.Less(t, mid.R, 0.5)
}

func TestHatch(t *testing.T) {
	assert.Equal(t, []colors.Color{red, blue, red, blue, red}, ExpandHatch(red, blue, 5))
	assert.Equal(t, []colors.Color{red, blue, red, blue}, ExpandHatch(red, blue, 4))
	assert.Equal(t, []colors.Color{red}, ExpandHatch(red, blue, 1))
	assert.Empty(t, ExpandHatch(red, blue, 0))
}

func TestExpanderUnknown(t *testing.T) {
	_, err := Interpolator{}.Expander(Style(9))
	assert.ErrorIs(t, err, ErrUnknownStyle)
	_, err = Resample(StepList(1), ColorPairs{Colors: []colors.Color{red, blue}}, Style(-1))
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestInterleave(t *testing.T) {
	c1, c2 := colors.Color{R: 0.2, G: 0.4, B: 0.6}, colors.Color{R: 0.9, G: 0.1, B: 0.3}
	src := []colors.Color{c1, c2}
	res := Interleave(colorspace.Default(), src, Target{Color: colors.White, Opacity: 0})
	assertColors(t, []colors.Color{c1, c1, c2, c2}, res)
	assert.Equal(t, []colors.Color{c1, c2}, src)

	res = Interleave(colorspace.Default(), src, Target{Color: colors.White, Opacity: 1})
	assertColors(t, []colors.Color{c1, colors.White, c2, colors.White}, res)

	res = Interleave(colorspace.Identity{}, []colors.Color{black}, DefaultTarget())
	assertColors(t, []colors.Color{black, gray}, res)

	assert.Empty(t, Interleave(colorspace.Default(), nil, DefaultTarget()))
}

func TestSynthesizeClamps(t *testing.T) {
	res := Synthesize(colorspace.Identity{}, []colors.Color{gray}, Target{Color: colors.White, Opacity: 2})
	assert.Equal(t, []colors.Color{colors.White}, res)
	res = Synthesize(colorspace.Default(), []colors.Color{red, green, blue}, Target{Color: yellow, Opacity: 1.5})
	assert.Len(t, res, 3)
	assertValid(t, res)
}

func TestParseTarget(t *testing.T) {
	tg, err := ParseTarget("white", 0.3)
	require.NoError(t, err)
	assert.Equal(t, Target{Color: colors.White, Opacity: 0.3}, tg)
	_, err = ParseTarget("nope", 0.3)
	assert.ErrorIs(t, err, colors.ErrInvalidColor)
}

func TestResampleScenarios(t *testing.T) {
	cp := ColorPairs{Colors: []colors.Color{red, blue}}

	cs, err := Resample(StepIndex(Step{0, 4}), cp, Gradient)
	require.NoError(t, err)
	assert.Len(t, cs, 4)
	assertValid(t, cs)
	assert.True(t, cs[0].AlmostEqual(red, tol))
	assert.True(t, cs[3].AlmostEqual(blue, tol))
	assertColors(t, ExpandGradient(red, blue, 4), cs)

	cs, err = Resample(StepIndex(Step{0, 5}), cp, Hatch)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{red, blue, red, blue, red}, cs)
}

func TestResampleZeroSteps(t *testing.T) {
	cp := ColorPairs{Colors: []colors.Color{red, blue, green, yellow, black, gray}}
	cs, err := Resample(StepList(2, 0, 3), cp, Hatch)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{red, blue, black, gray, black}, cs)

	cs, err = Resample(StepList(0, 0), cp, Gradient)
	require.NoError(t, err)
	assert.Empty(t, cs)

	cs, err = Resample(StepIndex(Step{1, 0}, Step{2, 1}), cp, Gradient)
	require.NoError(t, err)
	assertColors(t, []colors.Color{black}, cs)
}

func TestResampleSparseOrder(t *testing.T) {
	cp := ColorPairs{Colors: []colors.Color{red, blue, green, yellow, black, gray}}
	cs, err := Resample(StepIndex(Step{2, 3}, Step{0, 2}), cp, Hatch)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{black, gray, black, red, blue}, cs)

	var st Steps
	st.Set(1, 1)
	st.Set(0, 1)
	st.Set(1, 2)
	cs, err = Resample(st, cp, Hatch)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{green, yellow, red}, cs)
}

func TestResampleInsufficient(t *testing.T) {
	cp := ColorPairs{Colors: []colors.Color{red, blue, green, yellow}}
	_, err := Resample(StepIndex(Step{2, 1}), cp, Gradient)
	assert.ErrorIs(t, err, ErrInsufficientPalette)
	_, err = Resample(StepList(1, 1, 1), cp, Gradient)
	assert.ErrorIs(t, err, ErrInsufficientPalette)
	_, err = Resample(StepList(1, 1), cp, Gradient)
	assert.NoError(t, err)

	// tab20 has 10 pairs; Set1 paired with a target has 9
	_, err = Resample(StepIndex(Step{10, 1}), ColorPairs{}, Hatch)
	assert.ErrorIs(t, err, ErrInsufficientPalette)
	tg := DefaultTarget()
	_, err = Resample(StepIndex(Step{8, 1}), ColorPairs{Palette: "Set1", Unpaired: &tg}, Hatch)
	assert.NoError(t, err)
	_, err = Resample(StepIndex(Step{9, 1}), ColorPairs{Palette: "Set1", Unpaired: &tg}, Hatch)
	assert.ErrorIs(t, err, ErrInsufficientPalette)
}

func TestResampleConfiguration(t *testing.T) {
	_, err := Resample(StepList(1), ColorPairs{Palette: "viridis"}, Gradient)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = Resample(StepList(1), ColorPairs{Colors: []colors.Color{red, blue, green}}, Gradient)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = Resample(StepList(1), ColorPairs{Palette: "missing"}, Gradient)
	assert.ErrorIs(t, err, palettes.ErrUnknownPalette)
	_, err = Resample(StepList(-1), ColorPairs{}, Gradient)
	assert.ErrorIs(t, err, ErrConfiguration)

	tg := DefaultTarget()
	cs, err := Resample(StepList(1, 1, 1), ColorPairs{Colors: []colors.Color{red, blue, green}, Unpaired: &tg}, Hatch)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{red, blue, green}, cs)
}

func TestResampleDoesNotMutate(t *testing.T) {
	src := []colors.Color{red, blue}
	tg := DefaultTarget()
	_, err := Resample(StepList(3), ColorPairs{Colors: src, Unpaired: &tg}, Gradient)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{red, blue}, src)
}

func TestResampleCustomRegistry(t *testing.T) {
	reg := palettes.NewRegistry()
	require.NoError(t, reg.Register(palettes.Palette{Name: "rb", Colors: []colors.Color{red, blue}}))
	r := &Resampler{Palettes: reg}
	cs, err := r.Resample(StepList(3), ColorPairs{Palette: "rb"}, Hatch)
	require.NoError(t, err)
	assert.Equal(t, []colors.Color{red, blue, red}, cs)
	_, err = r.Resample(StepList(1), ColorPairs{}, Hatch)
	assert.ErrorIs(t, err, palettes.ErrUnknownPalette)
}

func TestPair(t *testing.T) {
	r := New(nil)
	src, dst, err := r.Pair(ColorPairs{}, 1)
	require.NoError(t, err)
	assert.Equal(t, "#ff7f0e", src.Hex())
	assert.Equal(t, "#ffbb78", dst.Hex())
	_, _, err = r.Pair(ColorPairs{}, 10)
	assert.ErrorIs(t, err, ErrInsufficientPalette)
}

func ExampleResample() {
	cp := ColorPairs{Colors: []colors.Color{colors.Red, colors.Blue, colors.Black, colors.White}}
	cs, err := Resample(StepIndex(Step{1, 3}, Step{0, 2}), cp, Hatch)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(colors.Hexes(cs))
	// Output: [#000000 #ffffff #000000 #ff0000 #0000ff]
}
