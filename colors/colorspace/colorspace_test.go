// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/fancybar/colors"
)

func TestIdentity(t *testing.T) {
	cs := []colors.Color{colors.Red, {R: 0.2, G: 0.4, B: 0.6}}
	us := Identity{}.ToUniform(cs)
	assert.Equal(t, []Uniform{{1, 0, 0}, {0.2, 0.4, 0.6}}, us)
	assert.Equal(t, cs, Identity{}.ToRGB(us))
	assert.Empty(t, Identity{}.ToUniform(nil))
}

func TestChooseFallback(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	sp := choose(nil)
	assert.Equal(t, Identity{}, sp)
	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))

	buf.Reset()
	sp = choose(func() Space { return stubSpace{} })
	assert.Equal(t, "stub", sp.Name())
	assert.Empty(t, buf.String())
}

func TestDefaultOnce(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a, b)
	if Available() {
		assert.NotEqual(t, "rgb", a.Name())
	} else {
		assert.Equal(t, "rgb", a.Name())
	}
}

func TestLookup(t *testing.T) {
	sp, err := Lookup("RGB")
	require.NoError(t, err)
	assert.Equal(t, Identity{}, sp)

	sp, err = Lookup("lab")
	require.NoError(t, err)
	assert.Equal(t, Default(), sp)

	sp, err = Lookup("")
	require.NoError(t, err)
	assert.Equal(t, Default(), sp)

	_, err = Lookup("hsv")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

type stubSpace struct{ Identity }

func (stubSpace) Name() string { return "stub" }
