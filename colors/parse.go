// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a value cannot be interpreted as a color.
var ErrInvalidColor = errors.New("invalid color")

// Tableau contains the "tab:" color names of the Tableau 10 palette.
var Tableau = map[string]Color{
	"tab:blue":   FromRGB255(0x1f, 0x77, 0xb4),
	"tab:orange": FromRGB255(0xff, 0x7f, 0x0e),
	"tab:green":  FromRGB255(0x2c, 0xa0, 0x2c),
	"tab:red":    FromRGB255(0xd6, 0x27, 0x28),
	"tab:purple": FromRGB255(0x94, 0x67, 0xbd),
	"tab:brown":  FromRGB255(0x8c, 0x56, 0x4b),
	"tab:pink":   FromRGB255(0xe3, 0x77, 0xc2),
	"tab:gray":   FromRGB255(0x7f, 0x7f, 0x7f),
	"tab:olive":  FromRGB255(0xbc, 0xbd, 0x22),
	"tab:cyan":   FromRGB255(0x17, 0xbe, 0xcf),
}

// Base contains the single-letter base color names.
var Base = map[string]Color{
	"b": {0, 0, 1},
	"g": {0, 0.5, 0},
	"r": {1, 0, 0},
	"c": {0, 0.75, 0.75},
	"m": {0.75, 0, 0.75},
	"y": {0.75, 0.75, 0},
	"k": {0, 0, 0},
	"w": {1, 1, 1},
}

// Standard named colors used in tests and defaults.
var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// FromName returns the color value specified by the given name, which
// can be a CSS standard color name, a "tab:" Tableau name, or a
// single-letter base color name. It returns an error if the name is
// not found.
func FromName(name string) (Color, error) {
	if c, ok := Base[name]; ok {
		return c, nil
	}
	lname := strings.ToLower(strings.TrimSpace(name))
	if c, ok := Tableau[lname]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[lname]; ok {
		return FromRGB255(c.R, c.G, c.B), nil
	}
	return Color{}, fmt.Errorf("colors.FromName: name not found: %q: %w", name, ErrInvalidColor)
}

// FromHex parses the given "#rgb" or "#rrggbb" hex color string.
// The leading "#" is optional.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, ErrInvalidColor)
	}
	return Color{c.R, c.G, c.B}, nil
}

// MustFromHex parses the given hex color string and panics on error.
func MustFromHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// FromString returns a color value from the given string, which
// is either a hex value starting with "#" or a color name
// accepted by [FromName].
func FromString(str string) (Color, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Color{}, fmt.Errorf("colors.FromString: empty string: %w", ErrInvalidColor)
	}
	if str[0] == '#' {
		return FromHex(str)
	}
	return FromName(str)
}
