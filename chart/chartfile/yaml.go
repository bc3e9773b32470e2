// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfile

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"cogentcore.org/fancybar/chart"
)

// DecodeYAML decodes a chart file in YAML. The chart mappings are
// walked as nodes so that groups, bars and categories keep their
// document order.
func DecodeYAML(data []byte) (*File, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	f := &File{Chart: &chart.Chart{}}
	if len(doc.Content) == 0 {
		return f, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "expected a mapping at the top level")
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		switch k.Value {
		case "options":
			if err := checkOptionKeys(v); err != nil {
				return nil, err
			}
			if err := v.Decode(&f.Options); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrFormat, err)
			}
		case "chart":
			groups, err := decodeGroups(v)
			if err != nil {
				return nil, err
			}
			f.Chart.Groups = groups
		default:
			return nil, nodeError(k, "unknown key %q", k.Value)
		}
	}
	if err := validate(f.Chart); err != nil {
		return nil, err
	}
	return f, nil
}

// optionKeys are the yaml keys of [Options].
var optionKeys = func() map[string]bool {
	keys := map[string]bool{}
	t := reflect.TypeFor[Options]()
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		keys[name] = true
	}
	return keys
}()

// checkOptionKeys rejects keys of an options mapping that
// no field of [Options] takes.
func checkOptionKeys(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(n.Content); i += 2 {
		if k := n.Content[i]; !optionKeys[k.Value] {
			return nodeError(k, "unknown option %q", k.Value)
		}
	}
	return nil
}

func decodeGroups(n *yaml.Node) ([]chart.Group, error) {
	var gs []chart.Group
	err := eachPair(n, func(name string, v *yaml.Node) error {
		g := chart.Group{Name: name}
		err := eachPair(v, func(name string, v *yaml.Node) error {
			b := chart.Bar{Name: name}
			err := eachPair(v, func(name string, v *yaml.Node) error {
				vals, err := decodeValues(v)
				if err != nil {
					return err
				}
				b.Categories = append(b.Categories, chart.Category{Name: name, Values: vals})
				return nil
			})
			g.Bars = append(g.Bars, b)
			return err
		})
		gs = append(gs, g)
		return err
	})
	return gs, err
}

// eachPair calls fn for each key and value of a mapping node, in order.
// A null node is an empty mapping.
func eachPair(n *yaml.Node, fn func(key string, v *yaml.Node) error) error {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return nodeError(n, "expected a mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// decodeValues decodes a list of numbers, a single number, or null.
func decodeValues(n *yaml.Node) ([]float64, error) {
	switch {
	case n.Kind == yaml.ScalarNode && n.Tag == "!!null":
		return nil, nil
	case n.Kind == yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return nil, nodeError(n, "invalid value %q", n.Value)
		}
		return []float64{v}, nil
	case n.Kind == yaml.SequenceNode:
		var vs []float64
		if err := n.Decode(&vs); err != nil {
			return nil, nodeError(n, "invalid values: %v", err)
		}
		return vs, nil
	}
	return nil, nodeError(n, "expected a number or a list of numbers")
}

func nodeError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", n.Line, fmt.Sprintf(format, args...), ErrFormat)
}

// EncodeYAML encodes a chart file in YAML.
func EncodeYAML(f *File) ([]byte, error) {
	var opts yaml.Node
	if err := opts.Encode(f.Options); err != nil {
		return nil, err
	}
	ch := &yaml.Node{Kind: yaml.MappingNode}
	if f.Chart != nil {
		for _, g := range f.Chart.Groups {
			gn := &yaml.Node{Kind: yaml.MappingNode}
			for _, b := range g.Bars {
				bn := &yaml.Node{Kind: yaml.MappingNode}
				for _, c := range b.Categories {
					vn := &yaml.Node{}
					if err := vn.Encode(c.Values); err != nil {
						return nil, err
					}
					vn.Style = yaml.FlowStyle
					bn.Content = append(bn.Content, keyNode(c.Name), vn)
				}
				gn.Content = append(gn.Content, keyNode(b.Name), bn)
			}
			ch.Content = append(ch.Content, keyNode(g.Name), gn)
		}
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		keyNode("options"), &opts,
		keyNode("chart"), ch,
	}}
	return yaml.Marshal(root)
}

func keyNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
