// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex encodes the raster image formats charts can be written in.
package imagex

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrFormat is returned for unknown or unsupported formats.
var ErrFormat = errors.New("imagex: unknown image format")

// Formats are the supported image encoding / decoding formats.
type Formats int32

// The supported image encoding formats.
const (
	None Formats = iota
	PNG
	JPEG
	BMP
)

func (f Formats) String() string {
	switch f {
	case None:
		return "none"
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// JPEGQuality is the quality used when encoding [JPEG] images.
var JPEGQuality = 90

// ExtToFormat returns a format based on a filename extension or
// format name, which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	}
	return None, fmt.Errorf("extension %q: %w", ext, ErrFormat)
}

// Write writes the image to the given writer using the given format.
func Write(im image.Image, w io.Writer, f Formats) error {
	var enc imgio.Encoder
	switch f {
	case PNG:
		enc = imgio.PNGEncoder()
	case JPEG:
		enc = imgio.JPEGEncoder(JPEGQuality)
	case BMP:
		enc = imgio.BMPEncoder()
	default:
		return fmt.Errorf("imagex.Write: format %v: %w", f, ErrFormat)
	}
	return enc(w, im)
}
