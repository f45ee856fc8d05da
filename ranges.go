package aoc

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Range is an inclusive range of integers.
type Range struct {
	Lo, Hi int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// Contains reports whether v is in r.
func (r Range) Contains(v int) bool {
	return r.Lo <= v && v <= r.Hi
}

// Len returns the number of integers in r.
func (r Range) Len() int {
	return r.Hi - r.Lo + 1
}

// ForEach calls f for each value in r in increasing order.
func (r Range) ForEach(f func(v int) (keepGoing bool)) {
	if r.Lo > r.Hi {
		return
	}
	for v := r.Lo; ; v++ {
		if !f(v) || v == r.Hi {
			return
		}
	}
}

// ParseRange parses "lo-hi". Reversed bounds are swapped.
func ParseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("bad range %q: missing '-'", s)
	}
	lo, err := strconv.Atoi(a)
	if err != nil {
		return Range{}, fmt.Errorf("bad range %q: %w", s, err)
	}
	hi, err := strconv.Atoi(b)
	if err != nil {
		return Range{}, fmt.Errorf("bad range %q: %w", s, err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Range{lo, hi}, nil
}

// RangeSet is a sorted list of disjoint, non-adjacent ranges.
type RangeSet []Range

// MergeRanges returns the union of rs. Overlapping and adjacent ranges are
// merged. rs is not modified.
func MergeRanges(rs []Range) RangeSet {
	if len(rs) == 0 {
		return nil
	}
	sorted := slices.Clone(rs)
	slices.SortFunc(sorted, func(a, b Range) int { return cmp.Compare(a.Lo, b.Lo) })

	out := RangeSet{sorted[0]}
	for _, r := range sorted[1:] {
		cur := &out[len(out)-1]
		if r.Lo <= cur.Hi+1 {
			cur.Hi = max(cur.Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Contains reports whether v is in any range of s.
func (s RangeSet) Contains(v int) bool {
	_, ok := slices.BinarySearchFunc(s, v, func(r Range, v int) int {
		switch {
		case r.Hi < v:
			return -1
		case r.Lo > v:
			return 1
		}
		return 0
	})
	return ok
}

// Len returns the number of integers covered by s.
func (s RangeSet) Len() int {
	n := 0
	for _, r := range s {
		n += r.Len()
	}
	return n
}
