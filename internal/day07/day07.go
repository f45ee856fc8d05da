// Package day07 simulates a tachyon beam falling through a manifold of
// splitters.
//
// The beam enters at the start marker in the top row and moves down one row
// per step. A beam that reaches a splitter stops and two new beams continue
// from the cells immediately left and right of the splitter.
package day07

import (
	"errors"
	"fmt"

	"github.com/maisem/aoc2025"
	"tailscale.com/util/set"
)

var (
	ErrNoStart        = errors.New("no start marker in the top row")
	ErrMultipleStarts = errors.New("more than one start marker in the top row")
	ErrSplitterAtEdge = errors.New("splitter at the grid edge sends a beam off the grid")
)

// Alphabet names the manifold's marker characters. Every other character
// is empty space.
type Alphabet struct {
	Start    byte
	Splitter byte
}

var DefaultAlphabet = Alphabet{Start: 'S', Splitter: '^'}

func Parse(input string) (aoc.Grid[byte], error) {
	return aoc.ParseGrid(input)
}

func (a Alphabet) start(g aoc.Grid[byte]) (aoc.Pt, error) {
	if g.Height() == 0 {
		return aoc.Pt{}, ErrNoStart
	}
	starts := aoc.FindInRow(g, 0, a.Start)
	switch len(starts) {
	case 0:
		return aoc.Pt{}, ErrNoStart
	case 1:
		return starts[0], nil
	}
	return aoc.Pt{}, fmt.Errorf("%w: %v", ErrMultipleStarts, starts)
}

// step moves a beam at p down one row. It returns the positions the beam
// occupies afterwards and whether it was split.
func (a Alphabet) step(g aoc.Grid[byte], p aoc.Pt) (next []aoc.Pt, split bool, err error) {
	n := p.Down()
	if g.At(n) != a.Splitter {
		return []aoc.Pt{n}, false, nil
	}
	for _, d := range []aoc.Direction{aoc.Left, aoc.Right} {
		q, ok := n.Step(d)
		if !ok || !g.In(q) {
			return nil, false, fmt.Errorf("%w: splitter at %v", ErrSplitterAtEdge, n)
		}
		next = append(next, q)
	}
	return next, true, nil
}

// CountSplits runs the beam to the bottom row and returns how many times a
// beam was split. Beams that land on the same cell merge into one.
func CountSplits(g aoc.Grid[byte], a Alphabet) (int, error) {
	s, err := a.start(g)
	if err != nil {
		return 0, err
	}
	beams := make(set.Set[aoc.Pt])
	beams.Add(s)
	splits := 0
	for y := 1; y < g.Height(); y++ {
		next := make(set.Set[aoc.Pt], beams.Len()+1)
		for p := range beams {
			ps, split, err := a.step(g, p)
			if err != nil {
				return 0, err
			}
			if split {
				splits++
			}
			for _, q := range ps {
				next.Add(q)
			}
		}
		beams = next
	}
	return splits, nil
}

// CountTimelines runs the beam to the bottom row treating every split as a
// fork into two timelines, and returns the number of timelines. Timelines
// that land on the same cell stay distinct.
func CountTimelines(g aoc.Grid[byte], a Alphabet) (int, error) {
	s, err := a.start(g)
	if err != nil {
		return 0, err
	}
	timelines := map[aoc.Pt]int{s: 1}
	for y := 1; y < g.Height(); y++ {
		next := make(map[aoc.Pt]int, len(timelines)+1)
		for p, n := range timelines {
			ps, _, err := a.step(g, p)
			if err != nil {
				return 0, err
			}
			for _, q := range ps {
				next[q] += n
			}
		}
		timelines = next
	}
	total := 0
	for _, n := range timelines {
		total += n
	}
	return total, nil
}

func Part1(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountSplits(g, DefaultAlphabet)
}

func Part2(input string) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return CountTimelines(g, DefaultAlphabet)
}
