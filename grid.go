package aoc

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"tailscale.com/util/deephash"
)

var (
	ErrGridSize   = errors.New("invalid grid dimensions")
	ErrRaggedGrid = errors.New("grid rows have different widths")
)

// Grid is a width x height matrix stored in a single row-major slice.
// The cell at (x, y) lives at index y*width + x.
type Grid[T any] struct {
	data []T
	w, h int
}

// NewGrid returns a w x h grid with every cell set to fill.
func NewGrid[T any](w, h int, fill T) (Grid[T], error) {
	if w < 0 || h < 0 {
		return Grid[T]{}, fmt.Errorf("%w: %dx%d", ErrGridSize, w, h)
	}
	if w != 0 && h > math.MaxInt/w {
		return Grid[T]{}, fmt.Errorf("%w: %dx%d overflows", ErrGridSize, w, h)
	}
	data := make([]T, w*h)
	for i := range data {
		data[i] = fill
	}
	return Grid[T]{data: data, w: w, h: h}, nil
}

// FromRows builds a grid from rows, which must all have the same length.
// The rows are copied.
func FromRows[T any](rows [][]T) (Grid[T], error) {
	if len(rows) == 0 {
		return Grid[T]{}, nil
	}
	w := len(rows[0])
	data := make([]T, 0, w*len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Grid[T]{}, fmt.Errorf("%w: row %d has width %d, want %d", ErrRaggedGrid, y, len(row), w)
		}
		data = append(data, row...)
	}
	return Grid[T]{data: data, w: w, h: len(rows)}, nil
}

// ParseGrid parses a character grid, one row per line. A trailing newline is
// optional.
func ParseGrid(s string) (Grid[byte], error) {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return Grid[byte]{}, nil
	}
	lines := strings.Split(s, "\n")
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return FromRows(rows)
}

// FormatGrid is the inverse of ParseGrid. Every row is terminated by a
// newline.
func FormatGrid(g Grid[byte]) string {
	var sb strings.Builder
	sb.Grow(len(g.data) + g.h)
	g.ForRows(func(_ int, row []byte) bool {
		sb.Write(row)
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func (g Grid[T]) Width() int  { return g.w }
func (g Grid[T]) Height() int { return g.h }

func (g Grid[T]) Size() Pt {
	return Pt{g.w, g.h}
}

// In reports whether p is inside the grid.
func (g Grid[T]) In(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h
}

func (g Grid[T]) index(p Pt) int {
	return p.Y*g.w + p.X
}

func (g Grid[T]) mustIn(op string, p Pt) {
	if !g.In(p) {
		panic(fmt.Sprintf("aoc: Grid.%s(%v) out of bounds for %dx%d grid", op, p, g.w, g.h))
	}
}

// At returns the cell at p. It panics if p is out of bounds.
func (g Grid[T]) At(p Pt) T {
	g.mustIn("At", p)
	return g.data[g.index(p)]
}

// AtOk returns the cell at p, or false if p is out of bounds.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.data[g.index(p)], true
}

// Ptr returns a pointer to the cell at p, or false if p is out of bounds.
func (g Grid[T]) Ptr(p Pt) (*T, bool) {
	if !g.In(p) {
		return nil, false
	}
	return &g.data[g.index(p)], true
}

// Set sets the cell at p. It panics if p is out of bounds.
func (g Grid[T]) Set(p Pt, v T) {
	g.mustIn("Set", p)
	g.data[g.index(p)] = v
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	return Grid[T]{
		data: append([]T(nil), g.data...),
		w:    g.w,
		h:    g.h,
	}
}

// ForEach calls f for every cell in row-major order until f returns false.
func (g Grid[T]) ForEach(f func(p Pt, v T) (keepGoing bool)) {
	for i, v := range g.data {
		if !f(Pt{i % g.w, i / g.w}, v) {
			return
		}
	}
}

// ForRow calls f for each cell of row y from left to right.
// It panics if y is out of bounds.
func (g Grid[T]) ForRow(y int, f func(x int, v T) (keepGoing bool)) {
	if y < 0 || y >= g.h {
		panic(fmt.Sprintf("aoc: row %d out of bounds (height %d)", y, g.h))
	}
	for x, v := range g.data[y*g.w : (y+1)*g.w] {
		if !f(x, v) {
			return
		}
	}
}

// ForCol calls f for each cell of column x from top to bottom.
// It panics if x is out of bounds.
func (g Grid[T]) ForCol(x int, f func(y int, v T) (keepGoing bool)) {
	if x < 0 || x >= g.w {
		panic(fmt.Sprintf("aoc: column %d out of bounds (width %d)", x, g.w))
	}
	for y := 0; y < g.h; y++ {
		if !f(y, g.data[y*g.w+x]) {
			return
		}
	}
}

// ForRows calls f with a copy of each row, top to bottom.
func (g Grid[T]) ForRows(f func(y int, row []T) (keepGoing bool)) {
	for y := 0; y < g.h; y++ {
		if !f(y, g.Row(y)) {
			return
		}
	}
}

// Row returns a copy of row y.
func (g Grid[T]) Row(y int) []T {
	out := make([]T, 0, g.w)
	g.ForRow(y, func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Col returns a copy of column x.
func (g Grid[T]) Col(x int) []T {
	out := make([]T, 0, g.h)
	g.ForCol(x, func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ForNeighbors calls f for each of the up to 8 in-bounds cells adjacent to p,
// in row-major order.
func (g Grid[T]) ForNeighbors(p Pt, f func(Pt) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt) bool {
		if !g.In(n) {
			return true
		}
		return f(n)
	})
}

// Neighbors returns the in-bounds cells adjacent to p.
func (g Grid[T]) Neighbors(p Pt) []Pt {
	out := make([]Pt, 0, 8)
	g.ForNeighbors(p, func(n Pt) bool {
		out = append(out, n)
		return true
	})
	return out
}

// Count returns the number of cells equal to v.
func Count[T comparable](g Grid[T], v T) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// FindInRow returns the positions of the cells in row y that equal v.
func FindInRow[T comparable](g Grid[T], y int, v T) []Pt {
	var out []Pt
	g.ForRow(y, func(x int, c T) bool {
		if c == v {
			out = append(out, Pt{x, y})
		}
		return true
	})
	return out
}

var (
	hashersMu sync.Mutex
	hashers   map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum
)

// Hash returns a hash of the grid contents and dimensions.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	hashersMu.Lock()
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	hashersMu.Unlock()
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}
