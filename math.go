package aoc

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
// It panics if line contains a non-digit.
func Digits(line string) []int {
	return MustGet(ParseDigits(line))
}

// ParseDigits returns the individual digits of the string.
func ParseDigits(line string) ([]int, error) {
	out := make([]int, 0, len(line))
	for i, c := range line {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("not a digit: %q at offset %d of %q", c, i, line)
		}
		out = append(out, int(c-'0'))
	}
	return out, nil
}

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers. The product of no numbers is 1.
func Product[T Number](nums ...T) T {
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

// NumDigits returns the number of decimal digits in n. Zero has one digit.
func NumDigits(n uint64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10^n.
func Pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// Divisors returns the divisors of n in ascending order.
func Divisors(n int) []int {
	var out []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		out = append(out, i)
		if j := n / i; j != i {
			out = append(out, j)
		}
	}
	slices.Sort(out)
	return out
}

// Int returns the int value of the string.
// It panics if s is not a number.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Ints returns the int values of the strings.
func Ints(s ...string) []int {
	return MustGet(ParseInts(s...))
}

// ParseInts returns the int values of the strings, ignoring surrounding
// whitespace.
func ParseInts(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
