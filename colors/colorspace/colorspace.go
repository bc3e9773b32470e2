// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace converts colors between display RGB and a
// perceptually uniform color space in which linear interpolation
// approximates perceptually linear color change.
package colorspace

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/fancybar/colors"
)

// ErrUnknownSpace is returned by [Lookup] for an unrecognized space name.
var ErrUnknownSpace = errors.New("unknown color space")

// Uniform is a color in a uniform color space; for [Lab]
// the components are L*, a*, and b*.
type Uniform [3]float64

// Space is a strategy for converting between display RGB and
// a uniform color space. Implementations must be safe for
// concurrent use and must not modify their arguments.
type Space interface {
	// Name returns the name of the space.
	Name() string

	// ToUniform converts the given RGB colors to the uniform space.
	ToUniform(cs []colors.Color) []Uniform

	// ToRGB converts the given uniform colors back to RGB.
	// The result is not clamped.
	ToRGB(us []Uniform) []colors.Color
}

// Identity is a [Space] that passes channels through unchanged,
// so that interpolation happens directly in RGB.
type Identity struct{}

func (Identity) Name() string { return "rgb" }

func (Identity) ToUniform(cs []colors.Color) []Uniform {
	us := make([]Uniform, len(cs))
	for i, c := range cs {
		us[i] = Uniform(c.Array())
	}
	return us
}

func (Identity) ToRGB(us []Uniform) []colors.Color {
	cs := make([]colors.Color, len(us))
	for i, u := range us {
		cs[i] = colors.Color{R: u[0], G: u[1], B: u[2]}
	}
	return cs
}

// newPerceptual returns the perceptual space compiled into this
// binary, or nil if it was built without one (the "nolab" tag).
var newPerceptual func() Space

// Available returns whether a perceptually uniform space is
// compiled into this binary.
func Available() bool {
	return newPerceptual != nil
}

// Default returns the space used when none is given explicitly.
// It is chosen once: the perceptual space when [Available],
// and otherwise [Identity], in which case a single warning is logged.
var Default = sync.OnceValue(func() Space {
	return choose(newPerceptual)
})

func choose(perceptual func() Space) Space {
	if perceptual != nil {
		return perceptual()
	}
	slog.Warn("colorspace: perceptual color space unavailable; interpolating in RGB space instead")
	return Identity{}
}

// Lookup returns the space with the given name: "lab" for the
// perceptual space (falling back like [Default] when it is not
// available), "rgb" or "identity" for [Identity], and "" or
// "default" for [Default].
func Lookup(name string) (Space, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return Default(), nil
	case "lab", "cielab":
		return Default(), nil
	case "rgb", "identity":
		return Identity{}, nil
	}
	return nil, fmt.Errorf("colorspace.Lookup: %q: %w", name, ErrUnknownSpace)
}
