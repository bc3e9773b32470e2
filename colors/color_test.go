// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamped(t *testing.T) {
	c := Color{-0.2, 0.5, 1.3}
	assert.False(t, c.IsValid())
	cc := c.Clamped()
	assert.Equal(t, Color{0, 0.5, 1}, cc)
	assert.True(t, cc.IsValid())

	cs := Clamp([]Color{{2, 2, 2}, {-1, 0, 0}})
	assert.Equal(t, []Color{White, Black}, cs)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, Red.AsRGBA())
	r, g, b, a := Color{0.5, 2, -1}.RGBA()
	assert.Equal(t, uint32(32768), r)
	assert.Equal(t, uint32(0xFFFF), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xFFFF), a)

	assert.Equal(t, Red, FromColor(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, Black, FromColor(color.RGBA{}))
	assert.True(t, FromColor(color.NRGBA{0, 0, 255, 128}).AlmostEqual(Blue, 1e-9))
}

func TestFromName(t *testing.T) {
	c, err := FromName("white")
	require.NoError(t, err)
	assert.Equal(t, White, c)

	c, err = FromName("Tab:Blue")
	require.NoError(t, err)
	assert.Equal(t, "#1f77b4", c.Hex())

	c, err = FromName("r")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	_, err = FromName("notacolor")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"#ff0000", "#ff0000", false},
		{"#0f0", "#00ff00", false},
		{"navy", "#000080", false},
		{" tab:orange ", "#ff7f0e", false},
		{"", "", true},
		{"#12", "", true},
		{"bogus", "", true},
	}
	for _, test := range tests {
		c, err := FromString(test.in)
		if test.err {
			assert.ErrorIs(t, err, ErrInvalidColor, test.in)
			continue
		}
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, c.Hex(), test.in)
		}
	}
	c, err := FromHex("336699")
	require.NoError(t, err)
	assert.Equal(t, "#336699", c.Hex())
}

func ExampleColor_Hex() {
	fmt.Println(Color{1, 0.5, 0}.Hex())
	fmt.Println(Hexes([]Color{White, Black}))
	// Output:
	// #ff8000
	// [#ffffff #000000]
}
