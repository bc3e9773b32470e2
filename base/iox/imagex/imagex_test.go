// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
)

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".bmp": BMP} {
		f, err := ExtToFormat(ext)
		require.NoError(t, err)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat(".gif")
	assert.ErrorIs(t, err, ErrFormat)
	_, err = ExtToFormat("")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestWrite(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	c := color.RGBA{200, 40, 90, 255}
	draw.Draw(src, src.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	for _, f := range []Formats{PNG, JPEG, BMP} {
		var b bytes.Buffer
		require.NoError(t, Write(src, &b, f), f)
		img, name, err := image.Decode(&b)
		require.NoError(t, err, f)
		assert.Equal(t, f.String(), name)
		assert.Equal(t, src.Bounds(), img.Bounds())
		AssertColor(t, c, img.At(4, 4), 8, "format %v", f)
	}
	assert.ErrorIs(t, Write(src, &bytes.Buffer{}, None), ErrFormat)
}

type recordT struct{ msgs []string }

func (r *recordT) Errorf(format string, args ...any) { r.msgs = append(r.msgs, format) }

func TestAssertColor(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{12, 8, 10, 255}, 2))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{13, 10, 10, 255}, 2))

	rt := &recordT{}
	assert.False(t, AssertColor(rt, color.White, color.Black, 10))
	assert.Len(t, rt.msgs, 1)
}
