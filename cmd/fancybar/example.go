// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"cogentcore.org/fancybar/chart"
	"cogentcore.org/fancybar/chart/chartfile"
	"cogentcore.org/fancybar/colors/colormap"
)

// exampleFile returns a small chart file showing the main options.
func exampleFile() *chartfile.File {
	legend := true
	return &chartfile.File{
		Options: chartfile.Options{
			Palette: colormap.DefaultPalette,
			Styles:  []colormap.Style{colormap.Hatch, colormap.Gradient},
			Legend:  &legend,
			Width:   800,
			Height:  400,
		},
		Chart: &chart.Chart{Groups: []chart.Group{
			{Name: "group1", Bars: []chart.Bar{
				{Name: "bar1", Categories: []chart.Category{
					{Name: "cat1", Values: []float64{1}},
					{Name: "cat2", Values: []float64{3, 1, 5}},
				}},
				{Name: "bar2", Categories: []chart.Category{
					{Name: "cat1", Values: []float64{2, 1, 3}},
					{Name: "cat3", Values: []float64{1, 1}},
				}},
			}},
			{Name: "group2", Bars: []chart.Bar{
				{Name: "bar1", Categories: []chart.Category{
					{Name: "cat2", Values: []float64{2, 2}},
					{Name: "cat3", Values: []float64{4}},
				}},
				{Name: "bar2", Categories: []chart.Category{
					{Name: "cat1", Values: []float64{1, 2, 1, 2}},
				}},
			}},
		}},
	}
}

func newExampleCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example chart file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := chartfile.ExtFormat(format)
			if err != nil {
				return err
			}
			var b []byte
			switch f {
			case chartfile.TOML:
				b, err = chartfile.EncodeTOML(exampleFile())
			case chartfile.YAML:
				b, err = chartfile.EncodeYAML(exampleFile())
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "format: toml or yaml")
	return cmd
}
