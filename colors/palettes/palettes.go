// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palettes provides a registry of named color palettes,
// prepopulated with the standard qualitative palettes used for
// categorical data.
package palettes

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/fancybar/base/errors"
	"cogentcore.org/fancybar/colors"
)

// ErrUnknownPalette is returned when a palette name is not registered.
var ErrUnknownPalette = errors.New("unknown palette")

// ErrInvalidPalette is returned when registering a malformed palette.
var ErrInvalidPalette = errors.New("invalid palette")

// Kind is the kind of a [Palette].
type Kind int32

const (
	// Listed is a palette of discrete colors meant to be used as is,
	// such as a qualitative palette for categories.
	Listed Kind = iota

	// Continuous is a sampled sequential palette whose colors are
	// stops of a continuous map rather than separate categories.
	Continuous
)

func (k Kind) String() string {
	switch k {
	case Listed:
		return "listed"
	case Continuous:
		return "continuous"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Palette is a named, ordered set of colors.
type Palette struct {
	Name   string
	Kind   Kind
	Colors []colors.Color
}

// Len returns the number of colors in the palette.
func (p Palette) Len() int { return len(p.Colors) }

// Registry is a concurrency-safe set of named palettes.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]Palette
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: map[string]Palette{}}
}

// Register adds the given palette to the registry, replacing
// any existing palette with the same name. The colors are copied.
func (r *Registry) Register(p Palette) error {
	if p.Name == "" {
		return fmt.Errorf("palettes.Register: empty name: %w", ErrInvalidPalette)
	}
	if len(p.Colors) == 0 {
		return fmt.Errorf("palettes.Register: %q has no colors: %w", p.Name, ErrInvalidPalette)
	}
	p.Colors = slices.Clone(p.Colors)
	r.mu.Lock()
	r.maps[p.Name] = p
	r.mu.Unlock()
	return nil
}

// Get returns the palette with the given name. An exact match is
// preferred; otherwise names are matched case-insensitively.
// The returned palette shares no memory with the registry.
func (r *Registry) Get(name string) (Palette, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.maps[name]
	if !ok {
		for nm, pp := range r.maps {
			if strings.EqualFold(nm, name) {
				p, ok = pp, true
				break
			}
		}
	}
	if !ok {
		return Palette{}, fmt.Errorf("palettes.Get: %q: %w", name, ErrUnknownPalette)
	}
	p.Colors = slices.Clone(p.Colors)
	return p, nil
}

// Names returns the sorted names of all registered palettes.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.maps))
	for nm := range r.maps {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// Default is the registry used when none is given explicitly.
// It contains [Builtin].
var Default = NewRegistry()

func init() {
	for _, p := range Builtin() {
		errors.Must(Default.Register(p))
	}
}

// FromHexes returns a palette with the given name, kind,
// and hex color values. It panics on an invalid hex value.
func FromHexes(name string, kind Kind, hexes ...string) Palette {
	p := Palette{Name: name, Kind: kind, Colors: make([]colors.Color, len(hexes))}
	for i, h := range hexes {
		p.Colors[i] = colors.MustFromHex(h)
	}
	return p
}
