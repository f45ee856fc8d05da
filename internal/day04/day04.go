// Package day04 simulates forklifts removing paper rolls from a grid. A roll
// is accessible when fewer than a threshold of its eight neighbors hold
// rolls; removing rolls can make more rolls accessible.
package day04

import (
	"github.com/maisem/aoc2025"
	"golang.org/x/exp/maps"
	"tailscale.com/util/set"
)

// Rules describes the grid alphabet and the removal threshold.
type Rules struct {
	Marked    byte // an occupied cell
	Blank     byte // an empty cell
	Threshold int  // a marked cell with fewer marked neighbors is removable
}

var DefaultRules = Rules{Marked: '@', Blank: '.', Threshold: 4}

func (r Rules) markedNeighbors(g aoc.Grid[byte], p aoc.Pt) int {
	n := 0
	g.ForNeighbors(p, func(q aoc.Pt) bool {
		if g.At(q) == r.Marked {
			n++
		}
		return true
	})
	return n
}

func (r Rules) removable(g aoc.Grid[byte], p aoc.Pt) bool {
	return g.At(p) == r.Marked && r.markedNeighbors(g, p) < r.Threshold
}

// Accessible returns the marked cells that are removable in g as it is,
// without removing anything.
func Accessible(g aoc.Grid[byte], r Rules) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, _ byte) bool {
		if r.removable(g, p) {
			out = append(out, p)
		}
		return true
	})
	return out
}

// collect returns the candidates that are removable in g. It does not
// modify g.
func collect(g aoc.Grid[byte], candidates []aoc.Pt, r Rules) []aoc.Pt {
	var out []aoc.Pt
	for _, p := range candidates {
		if r.removable(g, p) {
			out = append(out, p)
		}
	}
	return out
}

// Result is the outcome of Eliminate.
type Result struct {
	Removed int // cells removed in total
	Rounds  int // rounds that removed at least one cell
}

// Eliminate repeatedly removes every removable cell until none is left. g is
// not modified.
//
// Each round decides against the grid as it was at the start of the round
// and only then applies the removals, so the order in which candidates are
// visited does not matter. Only neighbors of removed cells are examined in
// the following round.
func Eliminate(g aoc.Grid[byte], r Rules) Result {
	g = g.Clone()
	frontier := make(set.Set[aoc.Pt])
	g.ForEach(func(p aoc.Pt, v byte) bool {
		if v == r.Marked {
			frontier.Add(p)
		}
		return true
	})

	var res Result
	for frontier.Len() > 0 {
		remove := collect(g, maps.Keys(frontier), r)
		if len(remove) == 0 {
			break
		}
		for _, p := range remove {
			g.Set(p, r.Blank)
		}
		res.Removed += len(remove)
		res.Rounds++

		next := make(set.Set[aoc.Pt])
		for _, p := range remove {
			g.ForNeighbors(p, func(q aoc.Pt) bool {
				if g.At(q) == r.Marked {
					next.Add(q)
				}
				return true
			})
		}
		frontier = next
	}
	return res
}

func Part1(input string) (int, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return 0, err
	}
	return len(Accessible(g, DefaultRules)), nil
}

func Part2(input string) (int, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return 0, err
	}
	return Eliminate(g, DefaultRules).Removed, nil
}
