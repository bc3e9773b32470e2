// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palettes

// Builtin returns the standard palettes: the Tableau and
// ColorBrewer qualitative palettes, plus two continuous ones.
func Builtin() []Palette {
	return []Palette{
		FromHexes("tab10", Listed,
			"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd",
			"8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf"),
		// tab20 is already interleaved as dark / light pairs.
		FromHexes("tab20", Listed,
			"1f77b4", "aec7e8", "ff7f0e", "ffbb78", "2ca02c",
			"98df8a", "d62728", "ff9896", "9467bd", "c5b0d5",
			"8c564b", "c49c94", "e377c2", "f7b6d2", "7f7f7f",
			"c7c7c7", "bcbd22", "dbdb8d", "17becf", "9edae5"),
		FromHexes("tab20b", Listed,
			"393b79", "5254a3", "6b6ecf", "9c9ede", "637939",
			"8ca252", "b5cf6b", "cedb9c", "8c6d31", "bd9e39",
			"e7ba52", "e7cb94", "843c39", "ad494a", "d6616b",
			"e7969c", "7b4173", "a55194", "ce6dbd", "de9ed6"),
		FromHexes("tab20c", Listed,
			"3182bd", "6baed6", "9ecae1", "c6dbef", "e6550d",
			"fd8d3c", "fdae6b", "fdd0a2", "31a354", "74c476",
			"a1d99b", "c7e9c0", "756bb1", "9e9ac8", "bcbddc",
			"dadaeb", "636363", "969696", "bdbdbd", "d9d9d9"),
		FromHexes("Set1", Listed,
			"e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00",
			"ffff33", "a65628", "f781bf", "999999"),
		FromHexes("Set2", Listed,
			"66c2a5", "fc8d62", "8da0cb", "e78ac3", "a6d854",
			"ffd92f", "e5c494", "b3b3b3"),
		FromHexes("Set3", Listed,
			"8dd3c7", "ffffb3", "bebada", "fb8072", "80b1d3",
			"fdb462", "b3de69", "fccde5", "d9d9d9", "bc80bd",
			"ccebc5", "ffed6f"),
		FromHexes("Pastel1", Listed,
			"fbb4ae", "b3cde3", "ccebc5", "decbe4", "fed9a6",
			"ffffcc", "e5d8bd", "fddaec", "f2f2f2"),
		FromHexes("Pastel2", Listed,
			"b3e2cd", "fdcdac", "cbd5e8", "f4cae4", "e6f5c9",
			"fff2ae", "f1e2cc", "cccccc"),
		FromHexes("Paired", Listed,
			"a6cee3", "1f78b4", "b2df8a", "33a02c", "fb9a99",
			"e31a1c", "fdbf6f", "ff7f00", "cab2d6", "6a3d9a",
			"ffff99", "b15928"),
		FromHexes("Accent", Listed,
			"7fc97f", "beaed4", "fdc086", "ffff99", "386cb0",
			"f0027f", "bf5b17", "666666"),
		FromHexes("Dark2", Listed,
			"1b9e77", "d95f02", "7570b3", "e7298a", "66a61e",
			"e6ab02", "a6761d", "666666"),
		FromHexes("viridis", Continuous,
			"440154", "482878", "3e4989", "31688e", "26828e",
			"1f9e89", "35b779", "6ece58", "b5de2b", "fde725"),
		FromHexes("gray", Continuous, "000000", "ffffff"),
	}
}
