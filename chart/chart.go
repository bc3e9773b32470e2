// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart assembles grouped, stacked, horizontal bar charts whose
// segments are colored with resampled color pairs: each group holds the
// same set of named bars, each bar the same set of named categories,
// and each category several values that are stacked along the bar.
// Bars of the same name share a style and categories of the same name
// share a color pair, and the values of a category get different shades
// of its pair.
package chart

import (
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"cogentcore.org/fancybar/base/ordmap"
)

var (
	// ErrInsufficientStyles is returned when fewer styles
	// than distinct bar names are given.
	ErrInsufficientStyles = errors.New("insufficient styles")

	// ErrInsufficientColorIndices is returned when fewer color pair
	// indices than distinct category names are given.
	ErrInsufficientColorIndices = errors.New("insufficient color indices")

	// ErrDuplicateColorIndices is returned when two categories
	// are assigned the same color pair.
	ErrDuplicateColorIndices = errors.New("duplicate color indices")

	// ErrDuplicateName is returned when two groups, two bars of a group
	// or two categories of a bar have the same name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrMissingName is returned when a group, bar or category has no name.
	ErrMissingName = errors.New("missing name")
)

// Category is a named list of values stacked one after another.
type Category struct {
	Name   string
	Values []float64
}

// Total returns the sum of the values.
func (c Category) Total() float64 {
	t := 0.0
	for _, v := range c.Values {
		t += v
	}
	return t
}

// Bar is a named bar made of categories.
type Bar struct {
	Name       string
	Categories []Category
}

// Category returns the category with the given name, if any.
func (b *Bar) Category(name string) (*Category, bool) {
	for i := range b.Categories {
		if b.Categories[i].Name == name {
			return &b.Categories[i], true
		}
	}
	return nil, false
}

// Group is a named group of bars.
type Group struct {
	Name string
	Bars []Bar
}

// Bar returns the bar with the given name, if any.
func (g *Group) Bar(name string) (*Bar, bool) {
	for i := range g.Bars {
		if g.Bars[i].Name == name {
			return &g.Bars[i], true
		}
	}
	return nil, false
}

// Chart describes a chart as group name -> bar name ->
// category name -> values, with every level in display order.
type Chart struct {
	Groups []Group
}

// Validate checks that every group, bar and category has a name that
// is unique among its siblings.
func (c *Chart) Validate() error {
	gs := map[string]bool{}
	for _, g := range c.Groups {
		if err := unique(gs, "group", g.Name); err != nil {
			return err
		}
		bs := map[string]bool{}
		for _, b := range g.Bars {
			if err := unique(bs, "bar", g.Name+"/"+b.Name); err != nil {
				return err
			}
			cs := map[string]bool{}
			for _, ct := range b.Categories {
				if err := unique(cs, "category", g.Name+"/"+b.Name+"/"+ct.Name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func unique(seen map[string]bool, what, path string) error {
	if path == "" || strings.HasSuffix(path, "/") {
		return fmt.Errorf("chart: %s %q has no name: %w", what, path, ErrMissingName)
	}
	if seen[path] {
		return fmt.Errorf("chart: duplicate %s %q: %w", what, path, ErrDuplicateName)
	}
	seen[path] = true
	return nil
}

// GroupNames returns the group names in order.
func (c *Chart) GroupNames() []string {
	res := make([]string, len(c.Groups))
	for i, g := range c.Groups {
		res[i] = g.Name
	}
	return res
}

// BarNames returns the unique bar names in order of first appearance.
func (c *Chart) BarNames() []string {
	seen := ordmap.New[string, struct{}]()
	for _, g := range c.Groups {
		for _, b := range g.Bars {
			seen.AddNew(b.Name, struct{}{})
		}
	}
	return seen.Keys()
}

// CategoryNames returns the unique category names in order of
// first appearance.
func (c *Chart) CategoryNames() []string {
	seen := ordmap.New[string, struct{}]()
	for _, g := range c.Groups {
		for _, b := range g.Bars {
			for _, cat := range b.Categories {
				seen.AddNew(cat.Name, struct{}{})
			}
		}
	}
	return seen.Keys()
}

// Renderer renders a chart layout to an image format.
type Renderer interface {
	Render(w io.Writer, l *Layout, size image.Point) error
}
