// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nolab

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cogentcore.org/fancybar/colors"
)

func TestLabValues(t *testing.T) {
	us := Lab{}.ToUniform([]colors.Color{colors.White, colors.Black, colors.Red})
	assert.InDelta(t, 100, us[0][0], 0.01)
	assert.InDelta(t, 0, us[0][1], 0.01)
	assert.InDelta(t, 0, us[0][2], 0.01)
	assert.InDelta(t, 0, us[1][0], 1e-6)
	assert.InDelta(t, 53.24, us[2][0], 0.05)
	assert.InDelta(t, 80.09, us[2][1], 0.1)
	assert.InDelta(t, 67.20, us[2][2], 0.1)
}

func TestLabRoundTrip(t *testing.T) {
	var cs []colors.Color
	for r := 0.0; r <= 1; r += 0.25 {
		for g := 0.0; g <= 1; g += 0.25 {
			for b := 0.0; b <= 1; b += 0.25 {
				cs = append(cs, colors.Color{R: r, G: g, B: b})
			}
		}
	}
	back := Lab{}.ToRGB(Lab{}.ToUniform(cs))
	for i, c := range cs {
		assert.True(t, c.AlmostEqual(back[i], 1e-4), "%v != %v", c, back[i])
	}
}

func TestLabAvailable(t *testing.T) {
	assert.True(t, Available())
	assert.Equal(t, "lab", Default().Name())
}
