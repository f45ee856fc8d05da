package main

import (
	_ "embed"
	"slices"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/day02"
	"github.com/maisem/aoc2025/internal/day03"
	"github.com/maisem/aoc2025/internal/day04"
	"github.com/maisem/aoc2025/internal/day05"
	"github.com/maisem/aoc2025/internal/day06"
	"github.com/maisem/aoc2025/internal/day07"
	"github.com/maisem/aoc2025/internal/day08"
	"golang.org/x/exp/maps"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return aoc.MustGet(day02.Part1(s.InputString()))
}

// want=4174379265
func (s solver) D2p2() any {
	return aoc.MustGet(day02.Part2(s.InputString()))
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return s.joltage(2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return s.joltage(12)
}

func (s solver) joltage(k int) int {
	sum := 0
	s.ForLines(func(bank string) {
		sum += aoc.MustGet(day03.Joltage(bank, k))
	})
	return sum
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	return aoc.MustGet(day04.Part1(s.InputString()))
}

// want=43
func (s solver) D4p2() any {
	g := aoc.MustGet(aoc.ParseGrid(s.InputString()))
	res := day04.Eliminate(g, day04.DefaultRules)
	s.Debugf("removed %d rolls in %d rounds", res.Removed, res.Rounds)
	return res.Removed
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	inv := aoc.MustGet(day05.Parse(s.InputString()))
	fresh := maps.Keys(inv.FreshIDs())
	slices.Sort(fresh)
	s.Debugf("distinct fresh ids: %v", fresh)
	return inv.CountFresh()
}

// want=14
func (s solver) D5p2() any {
	return aoc.MustGet(day05.Part2(s.InputString()))
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	return aoc.MustGet(day06.Part1(s.InputString()))
}

// want=3263827
func (s solver) D6p2() any {
	ps := aoc.MustGet(day06.ParseColumns(s.InputString()))
	for _, p := range ps {
		s.Debugf("%v = %d", p, p.Op.Apply(p.Nums))
	}
	return day06.Solve(ps)
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	return aoc.MustGet(day07.Part1(s.InputString()))
}

// want=40
func (s solver) D7p2() any {
	return aoc.MustGet(day07.Part2(s.InputString()))
}

/*
want=40

162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
*/
func (s solver) D8p1() any {
	n := 1000
	if s.SampleMode {
		n = 10
	}
	return aoc.MustGet(day08.Part1(s.InputString(), n))
}

// want=25272
func (s solver) D8p2() any {
	pts := aoc.MustGet(day08.ParsePoints(s.InputString()))
	last := aoc.MustGet(day08.ConnectAll(pts))
	s.Debug("last connection:", pts[last.A], pts[last.B])
	return pts[last.A].X * pts[last.B].X
}
