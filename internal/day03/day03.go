// Package day03 picks the largest number that can be formed from a fixed
// number of digits of each battery bank, keeping their order.
package day03

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

// Largest returns the largest k-digit number whose digits are a subsequence
// of digits.
func Largest(digits []int, k int) (int, error) {
	if k <= 0 || len(digits) < k {
		return 0, fmt.Errorf("need at least %d digits, have %d", k, len(digits))
	}
	// Keep a non-increasing stack; a larger digit pops smaller ones while we
	// can still afford to drop digits.
	drop := len(digits) - k
	var st aoc.Stack[int]
	for _, d := range digits {
		for drop > 0 {
			top, ok := st.Peek()
			if !ok || top >= d {
				break
			}
			st.Pop()
			drop--
		}
		st.Push(d)
	}
	n := 0
	for _, d := range st.Slice()[:k] {
		n = n*10 + d
	}
	return n, nil
}

// Joltage returns the largest k-digit number that one bank of batteries can
// produce.
func Joltage(bank string, k int) (int, error) {
	digits, err := aoc.ParseDigits(bank)
	if err != nil {
		return 0, err
	}
	return Largest(digits, k)
}

// TotalJoltage sums Joltage over every line of input.
func TotalJoltage(input string, k int) (int, error) {
	sum := 0
	for i, line := range aoc.Lines(input) {
		n, err := Joltage(line, k)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += n
	}
	return sum, nil
}

func Part1(input string) (int, error) { return TotalJoltage(input, 2) }

func Part2(input string) (int, error) { return TotalJoltage(input, 12) }
