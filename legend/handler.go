// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"fmt"
	"sync"

	"cogentcore.org/fancybar/colors"
)

// Box is a rectangle in renderer coordinates, with Y growing downward.
type Box struct {
	X, Y, W, H float32
}

// Canvas is the drawing surface handed to a [Drawer] by a renderer.
type Canvas interface {
	// FillRect fills the given rectangle with the given color.
	FillRect(x, y, w, h float32, c colors.Color)
}

// Entry is anything that can be shown in a legend.
type Entry interface {
	// Kind returns the kind used to look up the entry's [Drawer].
	Kind() string

	// GetLabel returns the text shown next to the entry.
	GetLabel() string
}

// Drawer draws the artwork of a legend entry into the given box.
type Drawer interface {
	Draw(cv Canvas, e Entry, box Box) error
}

// DrawerFunc is a function that implements [Drawer].
type DrawerFunc func(cv Canvas, e Entry, box Box) error

func (f DrawerFunc) Draw(cv Canvas, e Entry, box Box) error { return f(cv, e, box) }

// HandlerMap maps entry kinds to the drawers that render them.
// A renderer holds one and consults it for every legend entry;
// drawers are added explicitly during setup, see [RegisterHandles].
type HandlerMap struct {
	mu      sync.RWMutex
	drawers map[string]Drawer
}

// NewHandlerMap returns a new empty handler map.
func NewHandlerMap() *HandlerMap {
	return &HandlerMap{drawers: map[string]Drawer{}}
}

// Register sets the drawer for the given kind.
func (m *HandlerMap) Register(kind string, d Drawer) {
	m.mu.Lock()
	m.drawers[kind] = d
	m.mu.Unlock()
}

// Drawer returns the drawer for the given kind.
func (m *HandlerMap) Drawer(kind string) (Drawer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.drawers[kind]
	return d, ok
}

// Draw draws the given entry with the drawer registered for its kind.
func (m *HandlerMap) Draw(cv Canvas, e Entry, box Box) error {
	d, ok := m.Drawer(e.Kind())
	if !ok {
		return fmt.Errorf("legend: no drawer registered for kind %q", e.Kind())
	}
	return d.Draw(cv, e, box)
}

// RegisterHandles registers [DrawHandle] for [Handle] entries in m.
func RegisterHandles(m *HandlerMap) {
	m.Register(Kind, DrawerFunc(DrawHandle))
}

// DrawHandle draws a [Handle] as a stack of swatches, one per style,
// the first style on top. Each swatch shows its colors as equal-width
// slices from left to right.
func DrawHandle(cv Canvas, e Entry, box Box) error {
	h, ok := e.(*Handle)
	if !ok {
		return fmt.Errorf("legend.DrawHandle: expected *Handle, got %T", e)
	}
	n := h.Len()
	if n == 0 {
		return nil
	}
	sws, err := h.Swatches()
	if err != nil {
		return err
	}
	sh := box.H / float32(n)
	for i, sw := range sws {
		if len(sw) == 0 {
			continue
		}
		cw := box.W / float32(len(sw))
		y := box.Y + float32(i)*sh
		for j, c := range sw {
			cv.FillRect(box.X+float32(j)*cw, y, cw, sh, c)
		}
	}
	return nil
}
