// Package day05 checks ingredient IDs against the merged fresh ranges of the
// inventory database.
package day05

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2025"
	"tailscale.com/util/set"
)

var ErrNoSeparator = errors.New("missing blank line between ranges and ids")

// Inventory is a parsed database: the merged fresh ranges and the
// available ingredient ids.
type Inventory struct {
	Fresh aoc.RangeSet
	IDs   []int
}

// Parse parses a block of "lo-hi" lines, a blank line, then one id per line.
func Parse(input string) (*Inventory, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	rangesText, idsText, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, ErrNoSeparator
	}
	var ranges []aoc.Range
	for _, l := range aoc.Lines(rangesText) {
		r, err := aoc.ParseRange(l)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	inv := &Inventory{Fresh: aoc.MergeRanges(ranges)}
	for _, l := range aoc.Lines(idsText) {
		if strings.TrimSpace(l) == "" {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", l, err)
		}
		inv.IDs = append(inv.IDs, id)
	}
	return inv, nil
}

// FreshIDs returns the distinct available ids that fall in a fresh range.
// CountFresh counts repeated ids each time; FreshIDs reports each once.
func (inv *Inventory) FreshIDs() set.Set[int] {
	out := make(set.Set[int])
	for _, id := range inv.IDs {
		if inv.Fresh.Contains(id) {
			out.Add(id)
		}
	}
	return out
}

// CountFresh returns how many of the available ids are fresh. Repeated ids
// count each time.
func (inv *Inventory) CountFresh() int {
	n := 0
	for _, id := range inv.IDs {
		if inv.Fresh.Contains(id) {
			n++
		}
	}
	return n
}

func Part1(input string) (int, error) {
	inv, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return inv.CountFresh(), nil
}

// Part2 returns the number of ids covered by the fresh ranges.
func Part2(input string) (int, error) {
	inv, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return inv.Fresh.Len(), nil
}
