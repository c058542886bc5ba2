package combo

import "iter"

// Seq returns [0, 1, ..., n-1], or an empty slice for n <= 0.
func Seq(n int) []int {
	s := make([]int, max(n, 0))
	for i := range s {
		s[i] = i
	}
	return s
}

// Factorial returns n!, or 1 for n <= 1. The result overflows int for
// n > 20.
func Factorial(n int) int {
	f := 1
	for ; n > 1; n-- {
		f *= n
	}
	return f
}

// Permutations drives a fresh [Odometer] of n columns and collects its
// assignments in lexicographic order, each as a separate slice indexed by
// column. A positive limit stops after that many.
func Permutations(n, limit int) ([][]int, error) {
	o, err := NewOdometer(n)
	if err != nil {
		return nil, err
	}
	size := Factorial(min(n, 8))
	if limit > 0 {
		size = min(size, limit)
	}
	out := make([][]int, 0, size)
	err = walk(o, func(p []int) bool {
		out = append(out, p)
		return limit <= 0 || len(out) < limit
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AllPermutations is the lazy form of [Permutations] without a limit.
// For n < 1 the sequence is empty.
func AllPermutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if o, err := NewOdometer(n); err == nil {
			_ = walk(o, yield)
		}
	}
}

// walk starts o and hands every assignment to yield until the odometer is
// exhausted or yield returns false.
func walk(o *Odometer, yield func([]int) bool) error {
	if err := o.Start(); err != nil {
		return err
	}
	for {
		vals, err := o.Values()
		if err != nil {
			return err
		}
		if !yield(vals) {
			return nil
		}
		more, err := o.Advance()
		if err != nil || !more {
			return err
		}
	}
}
