// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartfile reads charts and their options from TOML and YAML files.
//
// In TOML, groups, bars and categories are arrays of tables, which keep
// their order:
//
//	[options]
//	palette = "tab20"
//	styles = ["hatch", "gradient"]
//
//	[[groups]]
//	name = "2024"
//	[[groups.bars]]
//	name = "cpu"
//	[[groups.bars.categories]]
//	name = "user"
//	values = [1, 2.5]
//
// In YAML, the chart is a mapping of groups to bars to categories to
// values, in document order:
//
//	options:
//	  palette: tab20
//	chart:
//	  "2024":
//	    cpu:
//	      user: [1, 2.5]
package chartfile

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/fancybar/chart"
	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colormap"
	"cogentcore.org/fancybar/colors/colorspace"
)

// ErrFormat is returned for files whose format is unknown or malformed.
var ErrFormat = errors.New("chartfile: invalid format")

// Format is a chart file format.
type Format int32

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// ExtFormat returns the format for the given file extension.
func ExtFormat(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unknown chart file extension %q: %w", ext, ErrFormat)
}

// Options are the chart options as written in a file.
// Zero values mean the defaults of [chart.DefaultOptions].
type Options struct {
	// Palette is the name of a registered palette.
	Palette string `toml:"palette,omitempty" yaml:"palette,omitempty"`

	// Colors are literal colors used instead of a palette.
	Colors []string `toml:"colors,omitempty" yaml:"colors,omitempty"`

	// Target is a color each palette color is mixed towards to
	// synthesize its pair; empty means the palette is already paired.
	Target string `toml:"target,omitempty" yaml:"target,omitempty"`

	// Opacity is the weight of the target color; nil means 0.5.
	Opacity *float64 `toml:"opacity,omitempty" yaml:"opacity,omitempty"`

	// PairIndices are the color pairs of the categories.
	PairIndices []int `toml:"pair_indices,omitempty" yaml:"pair_indices,omitempty"`

	// Styles are the styles of the bars.
	Styles []colormap.Style `toml:"styles,omitempty" yaml:"styles,omitempty"`

	GroupNames      *bool `toml:"group_names,omitempty" yaml:"group_names,omitempty"`
	BarNames        *bool `toml:"bar_names,omitempty" yaml:"bar_names,omitempty"`
	Legend          *bool `toml:"legend,omitempty" yaml:"legend,omitempty"`
	MaxLegendStyles *int  `toml:"max_legend_styles,omitempty" yaml:"max_legend_styles,omitempty"`

	// Space is the color space for interpolation, see [colorspace.Lookup].
	Space string `toml:"space,omitempty" yaml:"space,omitempty"`

	Width  int `toml:"width,omitempty" yaml:"width,omitempty"`
	Height int `toml:"height,omitempty" yaml:"height,omitempty"`
}

// DefaultSize is the output size used when the file gives none.
var DefaultSize = image.Point{800, 400}

// File is a chart with its options.
type File struct {
	Options Options
	Chart   *chart.Chart
}

// ChartOptions converts the file options to chart options.
func (f *File) ChartOptions() (chart.Options, error) {
	o := f.Options
	opts := chart.DefaultOptions()
	if o.Palette != "" {
		opts.Pairs.Palette = o.Palette
	}
	for _, s := range o.Colors {
		c, err := colors.FromString(s)
		if err != nil {
			return opts, fmt.Errorf("chartfile: colors: %w", err)
		}
		opts.Pairs.Colors = append(opts.Pairs.Colors, c)
	}
	if o.Target != "" || o.Opacity != nil {
		tg := colormap.DefaultTarget()
		if o.Opacity != nil {
			tg.Opacity = *o.Opacity
		}
		if o.Target != "" {
			var err error
			tg, err = colormap.ParseTarget(o.Target, tg.Opacity)
			if err != nil {
				return opts, fmt.Errorf("chartfile: target: %w", err)
			}
		}
		opts.Pairs.Unpaired = &tg
	}
	opts.PairIndices = o.PairIndices
	opts.Styles = o.Styles
	setIf(&opts.GroupNames, o.GroupNames)
	setIf(&opts.BarNames, o.BarNames)
	setIf(&opts.Legend, o.Legend)
	setIf(&opts.MaxLegendStyles, o.MaxLegendStyles)
	return opts, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Space returns the color space named in the options.
func (f *File) Space() (colorspace.Space, error) {
	return colorspace.Lookup(f.Options.Space)
}

// Size returns the output size, filling in [DefaultSize] for missing
// dimensions.
func (f *File) Size() image.Point {
	sz := image.Point{f.Options.Width, f.Options.Height}
	if sz.X <= 0 {
		sz.X = DefaultSize.X
	}
	if sz.Y <= 0 {
		sz.Y = DefaultSize.Y
	}
	return sz
}

// Decode decodes a chart file of the given format.
func Decode(data []byte, f Format) (*File, error) {
	switch f {
	case TOML:
		return DecodeTOML(data)
	case YAML:
		return DecodeYAML(data)
	}
	return nil, fmt.Errorf("format %v: %w", f, ErrFormat)
}

// Load reads the chart file at the given path, which may start with ~,
// using its extension to pick the format.
func Load(path string) (*File, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	f, err := ExtFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cf, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cf, nil
}

// validate reports an invalid chart as [ErrFormat].
func validate(c *chart.Chart) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return nil
}
