// Package day08 wires junction boxes into circuits, always connecting the
// closest pair of boxes next.
package day08

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/maisem/aoc2025"
)

var ErrTooFewBoxes = errors.New("need at least two junction boxes")

func ParsePoints(input string) ([]aoc.Pt3Int, error) {
	lines := aoc.Lines(input)
	out := make([]aoc.Pt3Int, 0, len(lines))
	for i, l := range lines {
		p, err := aoc.ParsePt3(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Pair is two box indexes, A < B, and their squared distance.
type Pair struct {
	A, B int
	Dist int
}

// SortedPairs returns every pair of boxes ordered by distance. Pairs at the
// same distance stay in (A, B) order.
func SortedPairs(pts []aoc.Pt3Int) []Pair {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	rows := aoc.Parallel(idx, func(i int) []Pair {
		row := make([]Pair, 0, len(pts)-i-1)
		for j := i + 1; j < len(pts); j++ {
			row = append(row, Pair{i, j, pts[i].DistSq(pts[j])})
		}
		return row
	})
	pairs := make([]Pair, 0, len(pts)*(len(pts)-1)/2)
	for _, r := range rows {
		pairs = append(pairs, r...)
	}
	aoc.SortStableFunc(pairs, func(a, b Pair) int {
		return cmp.Compare(a.Dist, b.Dist)
	})
	return pairs
}

// Connect joins the n closest pairs, whether or not they were already in
// the same circuit, and returns the product of the sizes of the three
// largest circuits.
func Connect(pts []aoc.Pt3Int, n int) int {
	uf := aoc.NewUnionFindSets(len(pts))
	pairs := SortedPairs(pts)
	for _, p := range pairs[:min(n, len(pairs))] {
		uf.Union(p.A, p.B)
	}
	sizes := uf.CircuitSizes()
	return aoc.Product(sizes[:min(3, len(sizes))]...)
}

// ConnectAll joins pairs closest first until every box is in one circuit
// and returns the last pair that merged two circuits.
func ConnectAll(pts []aoc.Pt3Int) (Pair, error) {
	if len(pts) < 2 {
		return Pair{}, ErrTooFewBoxes
	}
	uf := aoc.NewUnionFindSets(len(pts))
	var last Pair
	merges := 0
	for _, p := range SortedPairs(pts) {
		if !uf.Union(p.A, p.B) {
			continue
		}
		last = p
		if merges++; merges == len(pts)-1 {
			break
		}
	}
	return last, nil
}

// Part1 connects the n closest pairs.
func Part1(input string, n int) (int, error) {
	pts, err := ParsePoints(input)
	if err != nil {
		return 0, err
	}
	return Connect(pts, n), nil
}

// Part2 returns the product of the X coordinates of the last two boxes
// joined.
func Part2(input string) (int, error) {
	pts, err := ParsePoints(input)
	if err != nil {
		return 0, err
	}
	last, err := ConnectAll(pts)
	if err != nil {
		return 0, err
	}
	return pts[last.A].X * pts[last.B].X, nil
}
