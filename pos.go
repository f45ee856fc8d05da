package aoc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

// Pt2 is a grid coordinate. X is the column and Y is the row.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Up returns the point one row above p. It reports false if p is already on
// row 0.
func (p Pt2[T]) Up() (Pt2[T], bool) {
	if p.Y <= 0 {
		return p, false
	}
	return Pt2[T]{p.X, p.Y - 1}, true
}

// Left returns the point one column left of p. It reports false if p is
// already on column 0.
func (p Pt2[T]) Left() (Pt2[T], bool) {
	if p.X <= 0 {
		return p, false
	}
	return Pt2[T]{p.X - 1, p.Y}, true
}

// Down returns the point one row below p. The result may be outside any
// particular grid.
func (p Pt2[T]) Down() Pt2[T] {
	return Pt2[T]{p.X, p.Y + 1}
}

// Right returns the point one column right of p. The result may be outside
// any particular grid.
func (p Pt2[T]) Right() Pt2[T] {
	return Pt2[T]{p.X + 1, p.Y}
}

// Step moves p one cell in direction d. Moves that would go below zero
// report false.
func (p Pt2[T]) Step(d Direction) (Pt2[T], bool) {
	switch d {
	case Up:
		return p.Up()
	case Right:
		return p.Right(), true
	case Down:
		return p.Down(), true
	case Left:
		return p.Left()
	}
	panic(fmt.Sprintf("bad direction %d", d))
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f for the 8 points around p in row-major order. The
// points are not bounds checked.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt3Int = Pt3[int]

func (p Pt3[T]) String() string {
	return fmt.Sprintf("(%v,%v,%v)", p.X, p.Y, p.Z)
}

// DistSq returns the squared euclidean distance between a and b.
func (a Pt3[T]) DistSq(b Pt3[T]) T {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// ParsePt3 parses a point of the form "x,y,z".
func ParsePt3(s string) (Pt3Int, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return Pt3Int{}, fmt.Errorf("bad point %q: want 3 coordinates, got %d", s, len(parts))
	}
	v, err := ParseInts(parts...)
	if err != nil {
		return Pt3Int{}, fmt.Errorf("bad point %q: %w", s, err)
	}
	return Pt3Int{v[0], v[1], v[2]}, nil
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}
