// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend provides legend handles showing a color pair in
// several styles, and an explicit registry of handle drawers.
package legend

import (
	"errors"
	"fmt"
	"slices"

	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colormap"
)

// ErrSteps is returned when the number of step counts
// does not match the number of styles.
var ErrSteps = errors.New("legend: step counts do not match styles")

// Kind is the handle kind under which [Handle] drawers are registered.
const Kind = "fancy"

// Handle is a legend entry for one color pair, showing a stack of
// swatches, one per style.
type Handle struct {
	// Src is the source color of the pair.
	Src colors.Color

	// Dst is the destination color of the pair.
	Dst colors.Color

	// Styles are the styles to stack in the handle, top first.
	Styles []colormap.Style

	// Steps is the number of steps used for each style.
	Steps []int

	// Label is the text shown next to the handle.
	Label string

	// Interp expands the pair for each style.
	Interp colormap.Interpolator
}

// NewHandle returns a new handle for the given pair, label, and styles,
// using the default number of steps for each style
// (see [colormap.Style.DefaultSteps]).
func NewHandle(ip colormap.Interpolator, src, dst colors.Color, label string, styles ...colormap.Style) *Handle {
	h := &Handle{Src: src, Dst: dst, Label: label, Interp: ip, Styles: slices.Clone(styles)}
	h.Steps = make([]int, len(styles))
	for i, s := range styles {
		h.Steps[i] = s.DefaultSteps()
	}
	return h
}

// SetSteps overrides the number of steps for each style.
func (h *Handle) SetSteps(steps ...int) error {
	if len(steps) != len(h.Styles) {
		return fmt.Errorf("%w: %d steps for %d styles", ErrSteps, len(steps), len(h.Styles))
	}
	h.Steps = slices.Clone(steps)
	return nil
}

// Kind returns [Kind].
func (h *Handle) Kind() string { return Kind }

// GetLabel returns the label of the handle.
func (h *Handle) GetLabel() string { return h.Label }

// Len returns the number of swatches.
func (h *Handle) Len() int { return len(h.Styles) }

// Swatch returns the colors of the i-th swatch.
func (h *Handle) Swatch(i int) ([]colors.Color, error) {
	if len(h.Steps) != len(h.Styles) {
		return nil, fmt.Errorf("%w: %d steps for %d styles", ErrSteps, len(h.Steps), len(h.Styles))
	}
	return h.Interp.Expand(h.Styles[i], h.Src, h.Dst, h.Steps[i])
}

// Swatches returns the colors of all swatches in order.
func (h *Handle) Swatches() ([][]colors.Color, error) {
	res := make([][]colors.Color, h.Len())
	for i := range res {
		sw, err := h.Swatch(i)
		if err != nil {
			return nil, err
		}
		res[i] = sw
	}
	return res, nil
}
