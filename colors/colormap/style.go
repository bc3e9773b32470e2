// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is the interpolation strategy used to expand a color pair.
type Style int32

const (
	// Gradient linearly interpolates between the colors
	// of each pair in a perceptually uniform color space.
	Gradient Style = iota

	// Hatch alternates the colors of each pair.
	Hatch

	stylesN
)

var styleNames = [...]string{Gradient: "GRADIENT", Hatch: "HATCH"}

// StyleValues returns all possible values for [Style].
func StyleValues() []Style {
	return []Style{Gradient, Hatch}
}

// IsValid returns whether the value is a valid option for [Style].
func (s Style) IsValid() bool {
	return s >= 0 && s < stylesN
}

// String returns the string representation of this [Style] value.
func (s Style) String() string {
	if s.IsValid() {
		return styleNames[s]
	}
	return strconv.FormatInt(int64(s), 10)
}

// DefaultSteps returns the number of steps used to display
// the style in a legend swatch.
func (s Style) DefaultSteps() int {
	if s == Hatch {
		return 5
	}
	return 100
}

// ParseStyle returns the [Style] with the given name,
// matched case-insensitively.
func ParseStyle(name string) (Style, error) {
	for i, nm := range styleNames {
		if strings.EqualFold(nm, strings.TrimSpace(name)) {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("colormap.ParseStyle: %q: %w", name, ErrUnknownStyle)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (s Style) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("colormap.Style.MarshalText: %d: %w", int32(s), ErrUnknownStyle)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Style) UnmarshalText(text []byte) error {
	v, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Alternate returns n styles alternating between a and b,
// starting with a.
func Alternate(a, b Style, n int) []Style {
	return alternate(a, b, n)
}
