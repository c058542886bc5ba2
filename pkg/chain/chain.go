package chain

import "slices"

// Segment is an undirected pair of endpoints.
type Segment[T any] [2]T

// Chain is an ordered run of values built by joining segments end to end.
// For a loop the first value would equal the last; that duplicate is
// dropped, so Values lists each loop vertex once.
type Chain[T any] struct {
	Values []T  `json:"values"`
	IsLoop bool `json:"is_loop"`
}

// Merge joins segments that share endpoints into maximal chains and loops,
// comparing values with ==. See [MergeFunc].
func Merge[T comparable](segments []Segment[T]) []Chain[T] {
	return MergeFunc(segments, func(a, b T) bool { return a == b })
}

// MergeFunc joins segments that share endpoints into maximal chains and
// loops, comparing values with eq.
//
// Every segment starts as a two-value chain. Each pass looks at every pair
// of chains and joins the first pair that shares an endpoint (start-start,
// end-start, start-end or end-end), reversing one side as needed, then starts
// over. Merging stops after a pass without a join, or when one chain is left.
//
// MergeFunc assumes at most two segments meet at any endpoint. Where three
// or more do (a "spoke wheel"), chains are joined in whatever order the scan
// reaches them and the result is not a meaningful decomposition.
func MergeFunc[T any](segments []Segment[T], eq func(a, b T) bool) []Chain[T] {
	if len(segments) == 0 {
		return nil
	}
	runs := make([][]T, len(segments))
	for i, s := range segments {
		runs[i] = []T{s[0], s[1]}
	}

	for len(runs) > 1 {
		merged := false
	scan:
		for i := 0; i < len(runs); i++ {
			for j := i + 1; j < len(runs); j++ {
				joined, ok := join(runs[i], runs[j], eq)
				if !ok {
					continue
				}
				runs[i] = joined
				runs = slices.Delete(runs, j, j+1)
				merged = true
				break scan
			}
		}
		if !merged {
			break
		}
	}

	out := make([]Chain[T], len(runs))
	for i, r := range runs {
		if eq(r[0], r[len(r)-1]) {
			out[i] = Chain[T]{Values: r[:len(r)-1], IsLoop: true}
			continue
		}
		out[i] = Chain[T]{Values: r}
	}
	return out
}

// join returns a and b joined at a shared endpoint, with the shared value
// appearing once.
func join[T any](a, b []T, eq func(a, b T) bool) ([]T, bool) {
	aFirst, aLast := a[0], a[len(a)-1]
	bFirst, bLast := b[0], b[len(b)-1]

	out := make([]T, 0, len(a)+len(b)-1)
	switch {
	case eq(aLast, bFirst):
		out = append(out, a...)
		out = append(out, b[1:]...)
	case eq(aLast, bLast):
		out = append(out, a...)
		out = append(out, reversed(b)[1:]...)
	case eq(aFirst, bLast):
		out = append(out, b...)
		out = append(out, a[1:]...)
	case eq(aFirst, bFirst):
		out = append(out, reversed(b)...)
		out = append(out, a[1:]...)
	default:
		return nil, false
	}
	return out, true
}

func reversed[T any](s []T) []T {
	r := slices.Clone(s)
	slices.Reverse(r)
	return r
}
