// Package day02 finds product IDs whose decimal digits are a single block
// repeated.
package day02

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

// Parse parses a comma separated list of "lo-hi" ranges.
func Parse(input string) ([]aoc.Range, error) {
	var out []aoc.Range
	for _, f := range strings.Split(strings.TrimSpace(input), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		r, err := aoc.ParseRange(f)
		if err != nil {
			return nil, err
		}
		if r.Lo < 0 {
			return nil, fmt.Errorf("negative id in range %q", f)
		}
		out = append(out, r)
	}
	return out, nil
}

// repeats reports whether the digits of id (which has n digits) consist of
// the last blockLen digits repeated n/blockLen times.
func repeats(id uint64, blockLen, n int) bool {
	div := aoc.Pow10(blockLen)
	block := id % div
	for i := 1; i < n/blockLen; i++ {
		id /= div
		if id%div != block {
			return false
		}
	}
	return true
}

// InvalidTwice reports whether id is some block of digits repeated exactly
// twice, like 6464 or 123123.
func InvalidTwice(id int) bool {
	n := aoc.NumDigits(uint64(id))
	if n%2 == 1 {
		return false
	}
	return repeats(uint64(id), n/2, n)
}

// InvalidRepeated reports whether id is some block of digits repeated at
// least twice, like 111 or 12341234.
func InvalidRepeated(id int) bool {
	n := aoc.NumDigits(uint64(id))
	for _, d := range aoc.Divisors(n) {
		if d < n && repeats(uint64(id), d, n) {
			return true
		}
	}
	return false
}

// SumInvalid returns the sum of the ids in r for which invalid is true.
func SumInvalid(r aoc.Range, invalid func(int) bool) int {
	sum := 0
	r.ForEach(func(id int) bool {
		if invalid(id) {
			sum += id
		}
		return true
	})
	return sum
}

func Part1(input string) (int, error) {
	ranges, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range ranges {
		sum += SumInvalid(r, InvalidTwice)
	}
	return sum, nil
}

// Part2 is like Part1 with InvalidRepeated. Ranges are scanned concurrently.
func Part2(input string) (int, error) {
	ranges, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return aoc.ParallelMapFold(ranges,
		func(r aoc.Range) int { return SumInvalid(r, InvalidRepeated) },
		func(acc, v int) int { return acc + v },
		0,
	), nil
}
