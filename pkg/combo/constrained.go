package combo

import (
	"fmt"
	"iter"
	"slices"
)

// Adjacent reports whether the values in set occupy consecutive positions
// in perm. Repeated values in set count once; sets with fewer than two
// distinct values are always adjacent. Values missing from perm make the
// set non-adjacent.
func Adjacent(perm, set []int) bool {
	uniq := slices.Compact(slices.Sorted(slices.Values(set)))
	if len(uniq) < 2 {
		return true
	}
	lo, hi := len(perm), -1
	found := 0
	for pos, v := range perm {
		if _, ok := slices.BinarySearch(uniq, v); ok {
			lo, hi = min(lo, pos), max(hi, pos)
			found++
		}
	}
	return found == len(uniq) && hi-lo+1 == len(uniq)
}

// Constrained returns the permutations of 0..n-1, in lexicographic order,
// in which every set in sets is [Adjacent]. The sequence is lazy; each
// yielded slice is independent.
func Constrained(n int, sets [][]int) (iter.Seq[[]int], error) {
	if n < 1 {
		return nil, fmt.Errorf("permutations of %d: %w", n, ErrInvalidCount)
	}
	for i, set := range sets {
		for _, v := range set {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("set %d: value %d not in 0..%d: %w", i, v, n-1, ErrValueOutOfRange)
			}
		}
	}
	return func(yield func([]int) bool) {
		for p := range AllPermutations(n) {
			if !allAdjacent(p, sets) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}, nil
}

func allAdjacent(perm []int, sets [][]int) bool {
	for _, set := range sets {
		if !Adjacent(perm, set) {
			return false
		}
	}
	return true
}
