// Package day06 solves a worksheet of vertical arithmetic problems. The last
// line holds one operator per problem.
package day06

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/maisem/aoc2025"
)

var ErrNoOperators = errors.New("worksheet has no operator line")

// Op is a worksheet operator.
type Op byte

const (
	Add Op = '+'
	Mul Op = '*'
)

func parseOp(s string) (Op, error) {
	if len(s) == 1 {
		switch op := Op(s[0]); op {
		case Add, Mul:
			return op, nil
		}
	}
	return 0, fmt.Errorf("bad operator %q", s)
}

// Apply combines nums with op.
func (op Op) Apply(nums []int) int {
	if op == Mul {
		return aoc.Product(nums...)
	}
	return aoc.Sum(nums...)
}

// Problem is a list of operands and the operator combining them.
type Problem struct {
	Nums []int
	Op   Op
}

// Solve returns the sum of the answers to ps.
func Solve(ps []Problem) int {
	sum := 0
	for _, p := range ps {
		sum += p.Op.Apply(p.Nums)
	}
	return sum
}

func splitOps(input string) (numLines []string, opLine string, err error) {
	lines := aoc.Lines(input)
	if len(lines) < 2 {
		return nil, "", ErrNoOperators
	}
	return lines[:len(lines)-1], lines[len(lines)-1], nil
}

// ParseRows reads each problem top to bottom from whitespace separated
// columns of numbers.
func ParseRows(input string) ([]Problem, error) {
	numLines, opLine, err := splitOps(input)
	if err != nil {
		return nil, err
	}
	rows := make([][]int, len(numLines))
	for i, l := range numLines {
		rows[i], err = aoc.ParseInts(strings.Fields(l)...)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	g, err := aoc.FromRows(rows)
	if err != nil {
		return nil, err
	}
	opFields := strings.Fields(opLine)
	if len(opFields) != g.Width() {
		return nil, fmt.Errorf("%d operators for %d columns", len(opFields), g.Width())
	}
	ps := make([]Problem, g.Width())
	for x, f := range opFields {
		op, err := parseOp(f)
		if err != nil {
			return nil, err
		}
		ps[x] = Problem{Nums: g.Col(x), Op: op}
	}
	return ps, nil
}

// ParseColumns reads the worksheet right to left one character column at a
// time. The digits of a column, top to bottom, form one number, and the
// operator under a problem's leftmost column closes the problem.
func ParseColumns(input string) ([]Problem, error) {
	if len(aoc.Lines(input)) < 2 {
		return nil, ErrNoOperators
	}
	g, err := padded(input)
	if err != nil {
		return nil, err
	}
	opRow := g.Height() - 1

	var ps []Problem
	var cur []int
	for x := g.Width() - 1; x >= 0; x-- {
		n, digits := 0, false
		g.ForCol(x, func(y int, c byte) bool {
			if y == opRow {
				return false
			}
			if c >= '0' && c <= '9' {
				n = n*10 + int(c-'0')
				digits = true
			} else if c != ' ' {
				err = fmt.Errorf("bad character %q at (%d,%d)", c, x, y)
				return false
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		if digits {
			cur = append(cur, n)
		}
		switch c := g.At(aoc.Pt{X: x, Y: opRow}); c {
		case ' ':
		case byte(Add), byte(Mul):
			if len(cur) == 0 {
				return nil, fmt.Errorf("operator %q at column %d has no operands", c, x)
			}
			ps = append(ps, Problem{Nums: cur, Op: Op(c)})
			cur = nil
		default:
			return nil, fmt.Errorf("bad operator %q at column %d", c, x)
		}
	}
	if len(cur) > 0 {
		return nil, fmt.Errorf("numbers %v have no operator", cur)
	}
	return ps, nil
}

// padded returns the input as a character grid, right padding short lines
// with spaces.
func padded(input string) (aoc.Grid[byte], error) {
	lines := aoc.Lines(input)
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l + strings.Repeat(" ", w-len(l)))
	}
	return aoc.FromRows(rows)
}

func Part1(input string) (int, error) {
	ps, err := ParseRows(input)
	if err != nil {
		return 0, err
	}
	return Solve(ps), nil
}

func Part2(input string) (int, error) {
	ps, err := ParseColumns(input)
	if err != nil {
		return 0, err
	}
	return Solve(ps), nil
}

func (p Problem) String() string {
	parts := make([]string, len(p.Nums))
	for i, n := range p.Nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " "+string(p.Op)+" ")
}
