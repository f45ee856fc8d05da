package aoc

import (
	"fmt"
	"slices"
)

// UnionFind is a disjoint-set forest over the elements 0..n-1 with union by
// size and path compression.
//
// Every element must be initialized with MakeSet before it is passed to Find
// or Union.
type UnionFind struct {
	// parent[i] is the parent of i, i itself for a root, or -1 if i was
	// never initialized.
	parent []int
	// size[i] is the number of elements in the set rooted at i. Only
	// meaningful for roots.
	size []int
}

// NewUnionFind returns a UnionFind with room for n elements, none of which
// are initialized.
func NewUnionFind(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = -1
	}
	return u
}

// NewUnionFindSets returns a UnionFind of n singleton sets.
func NewUnionFindSets(n int) *UnionFind {
	u := NewUnionFind(n)
	for i := 0; i < n; i++ {
		u.MakeSet(i)
	}
	return u
}

// Len returns the number of element slots.
func (u *UnionFind) Len() int { return len(u.parent) }

// MakeSet makes i a singleton set. It panics if i was already initialized.
func (u *UnionFind) MakeSet(i int) {
	if u.parent[i] != -1 {
		panic(fmt.Sprintf("aoc: UnionFind.MakeSet(%d) called twice", i))
	}
	u.parent[i] = i
	u.size[i] = 1
}

// Find returns the representative of the set containing i.
func (u *UnionFind) Find(i int) int {
	if u.parent[i] == -1 {
		panic(fmt.Sprintf("aoc: UnionFind.Find(%d) on uninitialized element", i))
	}
	root := i
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Compress the path.
	for i != root {
		i, u.parent[i] = u.parent[i], root
	}
	return root
}

// Union merges the sets containing a and b. It reports whether they were in
// different sets.
func (u *UnionFind) Union(a, b int) bool {
	a, b = u.Find(a), u.Find(b)
	if a == b {
		return false
	}
	if u.size[a] < u.size[b] {
		a, b = b, a
	}
	u.parent[b] = a
	u.size[a] += u.size[b]
	return true
}

// Same reports whether a and b are in the same set.
func (u *UnionFind) Same(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// ForRoots calls f for each set representative in increasing order.
func (u *UnionFind) ForRoots(f func(root int) (keepGoing bool)) {
	for i, p := range u.parent {
		if p == i && !f(i) {
			return
		}
	}
}

// Roots returns the set representatives in increasing order.
func (u *UnionFind) Roots() []int {
	var out []int
	u.ForRoots(func(r int) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Size returns the size of the set containing i.
func (u *UnionFind) Size(i int) int {
	return u.size[u.Find(i)]
}

// Sets returns the number of disjoint sets.
func (u *UnionFind) Sets() int {
	n := 0
	u.ForRoots(func(int) bool {
		n++
		return true
	})
	return n
}

// CircuitSizes returns the sizes of all sets with more than one element,
// largest first.
func (u *UnionFind) CircuitSizes() []int {
	var sizes []int
	u.ForRoots(func(r int) bool {
		if u.size[r] > 1 {
			sizes = append(sizes, u.size[r])
		}
		return true
	})
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return sizes
}
