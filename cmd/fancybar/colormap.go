// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cogentcore.org/fancybar/base/errors"
	"cogentcore.org/fancybar/colors"
	"cogentcore.org/fancybar/colors/colormap"
	"cogentcore.org/fancybar/colors/colorspace"
	"cogentcore.org/fancybar/colors/palettes"
)

type colormapFlags struct {
	palette string
	colors  []string
	target  string
	opacity float64
	style   string
	steps   string
	space   string
	hex     bool
}

func newColormapCmd() *cobra.Command {
	var cf colormapFlags
	cmd := &cobra.Command{
		Use:   "colormap",
		Short: "Print a colormap resampled from color pairs",
		Example: "  fancybar colormap --steps 4,0,3 --style hatch\n" +
			"  fancybar colormap --palette Set1 --target white --steps 2=3,0=2",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := resample(cf)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if cf.hex {
				_, err = fmt.Fprintln(w, strings.Join(colors.Hexes(cm), " "))
				return err
			}
			return printSwatches(w, cm)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cf.palette, "palette", "p", colormap.DefaultPalette, "palette of color pairs")
	f.StringSliceVarP(&cf.colors, "colors", "c", nil, "literal colors used instead of the palette")
	f.StringVarP(&cf.target, "target", "t", "", "synthesize the pair of each color by mixing it with this color")
	f.Float64Var(&cf.opacity, "opacity", colormap.DefaultTarget().Opacity, "weight of the target color")
	f.StringVarP(&cf.style, "style", "s", colormap.Gradient.String(), styleUsage())
	f.StringVarP(&cf.steps, "steps", "n", "", "steps per pair, as a list (4,0,3) or by index (2=3,0=2); default: the style's steps for pair 0")
	f.StringVar(&cf.space, "space", "", spaceUsage())
	f.BoolVar(&cf.hex, "hex", false, "print only the hex codes")
	return cmd
}

func styleUsage() string {
	var names []string
	for _, s := range colormap.StyleValues() {
		names = append(names, strings.ToLower(s.String()))
	}
	return "style: " + strings.Join(names, " or ")
}

func spaceUsage() string {
	u := "color space for interpolation: lab or rgb"
	if !colorspace.Available() {
		u += " (lab falls back to rgb in this build)"
	}
	return u
}

func resample(cf colormapFlags) ([]colors.Color, error) {
	style, err := colormap.ParseStyle(cf.style)
	if err != nil {
		return nil, err
	}
	steps := colormap.StepList(style.DefaultSteps())
	if cf.steps != "" {
		if steps, err = colormap.ParseSteps(cf.steps); err != nil {
			return nil, err
		}
	}
	sp, err := colorspace.Lookup(cf.space)
	if err != nil {
		return nil, err
	}
	cp := colormap.ColorPairs{Palette: cf.palette}
	for _, s := range cf.colors {
		c, err := colors.FromString(s)
		if err != nil {
			return nil, err
		}
		cp.Colors = append(cp.Colors, c)
	}
	if cf.target != "" {
		tg, err := colormap.ParseTarget(cf.target, cf.opacity)
		if err != nil {
			return nil, err
		}
		cp.Unpaired = &tg
	}
	return colormap.New(sp).Resample(steps, cp, style)
}

// printSwatches prints one line per color with a swatch, when the
// output supports color, followed by its hex code.
func printSwatches(w io.Writer, cs []colors.Color) error {
	out := termenv.NewOutput(w)
	for _, c := range cs {
		if _, err := fmt.Fprintln(w, swatch(out, c, 4)+" "+c.Hex()); err != nil {
			return err
		}
	}
	return nil
}

// swatch returns n cells with the given background color, or nothing
// when the output has no colors.
func swatch(out *termenv.Output, c colors.Color, n int) string {
	if out.Profile == termenv.Ascii {
		return ""
	}
	return out.String(strings.Repeat(" ", n)).Background(out.Color(c.Hex())).String()
}

func newPalettesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes",
		Short: "List the available palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			out := termenv.NewOutput(w)
			for _, name := range palettes.Default.Names() {
				p := errors.Must1(palettes.Default.Get(name))
				var sb strings.Builder
				for _, c := range p.Colors {
					sb.WriteString(swatch(out, c, 1))
				}
				line := fmt.Sprintf("%-10s %-10s %3d %s", p.Name, p.Kind, p.Len(), sb.String())
				if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
