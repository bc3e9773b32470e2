// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import "errors"

var (
	// ErrConfiguration is returned when the palette is not a flat,
	// evenly pairable list of discrete colors, or a step list is malformed.
	ErrConfiguration = errors.New("invalid colormap configuration")

	// ErrInsufficientPalette is returned when a step list references
	// more color pairs than the palette provides.
	ErrInsufficientPalette = errors.New("insufficient palette")

	// ErrUnknownStyle is returned for a style outside of [StyleValues].
	ErrUnknownStyle = errors.New("unknown style")
)
