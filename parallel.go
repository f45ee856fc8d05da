package aoc

import (
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel returns f applied to each element of in, running each call in its
// own goroutine. The output order matches in.
func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}

// parallelSortMin is the smallest input SortStableFunc splits across
// goroutines.
const parallelSortMin = 1 << 12

// SortStableFunc sorts s like slices.SortStableFunc, splitting large inputs
// into chunks that are sorted concurrently and then merged. Elements that
// compare equal keep their original order, so the result is identical to the
// sequential sort.
func SortStableFunc[E any](s []E, cmp func(a, b E) int) {
	n := len(s)
	workers := runtime.GOMAXPROCS(0)
	if n < parallelSortMin || workers < 2 {
		slices.SortStableFunc(s, cmp)
		return
	}

	chunk := (n + workers - 1) / workers
	var bounds []int
	for lo := 0; lo < n; lo += chunk {
		bounds = append(bounds, lo)
	}
	bounds = append(bounds, n)

	var g errgroup.Group
	for i := 0; i+1 < len(bounds); i++ {
		part := s[bounds[i]:bounds[i+1]]
		g.Go(func() error {
			slices.SortStableFunc(part, cmp)
			return nil
		})
	}
	g.Wait()

	buf := make([]E, n)
	for len(bounds) > 2 {
		var next []int
		var mg errgroup.Group
		for i := 0; i+1 < len(bounds); i += 2 {
			lo := bounds[i]
			next = append(next, lo)
			if i+2 >= len(bounds) {
				continue // odd run out, already in place
			}
			mid, hi := bounds[i+1], bounds[i+2]
			mg.Go(func() error {
				mergeRuns(buf[lo:hi], s[lo:mid], s[mid:hi], cmp)
				copy(s[lo:hi], buf[lo:hi])
				return nil
			})
		}
		mg.Wait()
		bounds = append(next, n)
	}
}

// mergeRuns merges the sorted runs a and b into dst. On ties the element
// from a comes first.
func mergeRuns[E any](dst, a, b []E, cmp func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
