// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfile

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/fancybar/chart"
)

type tomlFile struct {
	Options Options     `toml:"options"`
	Groups  []tomlGroup `toml:"groups"`
}

type tomlGroup struct {
	Name string    `toml:"name"`
	Bars []tomlBar `toml:"bars"`
}

type tomlBar struct {
	Name       string         `toml:"name"`
	Categories []tomlCategory `toml:"categories"`
}

type tomlCategory struct {
	Name   string    `toml:"name"`
	Values []float64 `toml:"values"`
}

// DecodeTOML decodes a chart file in TOML. Unknown keys are errors.
func DecodeTOML(data []byte) (*File, error) {
	var tf tomlFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	c := &chart.Chart{}
	for _, tg := range tf.Groups {
		g := chart.Group{Name: tg.Name}
		for _, tb := range tg.Bars {
			b := chart.Bar{Name: tb.Name}
			for _, tc := range tb.Categories {
				b.Categories = append(b.Categories, chart.Category{Name: tc.Name, Values: tc.Values})
			}
			g.Bars = append(g.Bars, b)
		}
		c.Groups = append(c.Groups, g)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	return &File{Options: tf.Options, Chart: c}, nil
}

// EncodeTOML encodes a chart file in TOML.
func EncodeTOML(f *File) ([]byte, error) {
	tf := tomlFile{Options: f.Options}
	if f.Chart != nil {
		for _, g := range f.Chart.Groups {
			tg := tomlGroup{Name: g.Name}
			for _, b := range g.Bars {
				tb := tomlBar{Name: b.Name}
				for _, c := range b.Categories {
					tb.Categories = append(tb.Categories, tomlCategory{Name: c.Name, Values: c.Values})
				}
				tg.Bars = append(tg.Bars, tb)
			}
			tf.Groups = append(tf.Groups, tg)
		}
	}
	return toml.Marshal(tf)
}
