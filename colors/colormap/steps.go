// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"strconv"
	"strings"
)

// Step requests that color pair Pair be expanded to Count colors.
type Step struct {
	Pair  int
	Count int
}

// Steps specifies how many colors each color pair expands to.
//
// A positional step list (see [StepList]) uses the i-th pair for the i-th
// count. An indexed step list (see [StepIndex] and [Steps.Set]) names its
// pairs explicitly, may skip pairs, and keeps its insertion order,
// which is also the order of the resampled output.
type Steps struct {
	// Indexed is whether pairs are named explicitly
	// rather than implied by position.
	Indexed bool

	entries []Step
}

// StepList returns a positional step list with the given counts.
func StepList(counts ...int) Steps {
	s := Steps{entries: make([]Step, len(counts))}
	for i, c := range counts {
		s.entries[i] = Step{Pair: i, Count: c}
	}
	return s
}

// StepIndex returns an indexed step list with the given steps, in order.
// A repeated pair updates the count of its first occurrence.
func StepIndex(steps ...Step) Steps {
	s := Steps{Indexed: true}
	for _, st := range steps {
		s.Set(st.Pair, st.Count)
	}
	return s
}

// Set sets the count for the given pair, appending it if it is
// new and updating it in place otherwise. It makes the step list indexed.
func (s *Steps) Set(pair, count int) {
	s.Indexed = true
	for i := range s.entries {
		if s.entries[i].Pair == pair {
			s.entries[i].Count = count
			return
		}
	}
	s.entries = append(s.entries, Step{Pair: pair, Count: count})
}

// Count returns the count for the given pair and whether it is present.
func (s Steps) Count(pair int) (int, bool) {
	for _, st := range s.entries {
		if st.Pair == pair {
			return st.Count, true
		}
	}
	return 0, false
}

// Len returns the number of entries.
func (s Steps) Len() int { return len(s.entries) }

// Needed returns the number of color pairs the palette must provide:
// the largest referenced pair plus one for an indexed step list, and the
// number of entries for a positional one.
func (s Steps) Needed() int {
	if !s.Indexed {
		return len(s.entries)
	}
	n := 0
	for _, st := range s.entries {
		n = max(n, st.Pair+1)
	}
	return n
}

// Total returns the number of colors the step list produces,
// which is the sum of all counts.
func (s Steps) Total() int {
	n := 0
	for _, st := range s.entries {
		n += st.Count
	}
	return n
}

// Validate returns an error if any pair index or count is negative.
func (s Steps) Validate() error {
	for _, st := range s.entries {
		if st.Pair < 0 || st.Count < 0 {
			return fmt.Errorf("colormap.Steps: pair %d with count %d: %w", st.Pair, st.Count, ErrConfiguration)
		}
	}
	return nil
}

// String returns the step list in the format accepted by [ParseSteps].
func (s Steps) String() string {
	parts := make([]string, len(s.entries))
	for i, st := range s.entries {
		if s.Indexed {
			parts[i] = strconv.Itoa(st.Pair) + "=" + strconv.Itoa(st.Count)
		} else {
			parts[i] = strconv.Itoa(st.Count)
		}
	}
	return strings.Join(parts, ",")
}

// ParseSteps parses a comma-separated step list: either plain counts
// ("4,0,3") for a positional step list, or pair=count entries
// ("2=3,0=2") for an indexed one.
func ParseSteps(str string) (Steps, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Steps{}, nil
	}
	fields := strings.Split(str, ",")
	indexed := strings.Contains(str, "=")
	var s Steps
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if !indexed {
			c, err := strconv.Atoi(f)
			if err != nil {
				return Steps{}, fmt.Errorf("colormap.ParseSteps: entry %d %q: %w", i, f, ErrConfiguration)
			}
			s.entries = append(s.entries, Step{Pair: i, Count: c})
			continue
		}
		ps, cs, ok := strings.Cut(f, "=")
		p, perr := strconv.Atoi(strings.TrimSpace(ps))
		c, cerr := strconv.Atoi(strings.TrimSpace(cs))
		if !ok || perr != nil || cerr != nil {
			return Steps{}, fmt.Errorf("colormap.ParseSteps: entry %d %q: %w", i, f, ErrConfiguration)
		}
		s.Set(p, c)
	}
	if err := s.Validate(); err != nil {
		return Steps{}, err
	}
	return s, nil
}
