// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements an ordered map that retains the order of
// items as they are first added, while also providing fast key-based
// lookup of items.
//
// The slice holds the keys and values in order, and the map holds
// the index of each key into the slice. Adding and lookup are fast;
// there is no deletion.
package ordmap

import (
	"fmt"
	"strings"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a generic ordered map. Its zero value is not usable; see [New].
type Map[K comparable, V any] struct {
	// Order is the list of keys and values in the order added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

// Add sets the value for the given key. A new key is added to the end;
// an existing key keeps its position and gets the new value.
func (om *Map[K, V]) Add(key K, val V) {
	if idx, ok := om.Map[key]; ok {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// AddNew adds the key with the given value if it is not already present,
// and returns whether it was added.
func (om *Map[K, V]) AddNew(key K, val V) bool {
	if _, ok := om.Map[key]; ok {
		return false
	}
	om.Add(key, val)
	return true
}

// ValueByKeyTry returns the value for the given key, and whether it exists.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	idx, ok := om.Map[key]
	if !ok {
		var zv V
		return zv, false
	}
	return om.Order[idx].Value, true
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, len(om.Order))
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, len(om.Order))
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// String returns the items as "key: value" pairs in order.
func (om *Map[K, V]) String() string {
	parts := make([]string, len(om.Order))
	for i, kv := range om.Order {
		parts[i] = fmt.Sprintf("%v: %v", kv.Key, kv.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
