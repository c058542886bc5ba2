package combo

import (
	"fmt"
	"iter"
	"slices"
)

// Subsets enumerates every non-empty subset of {0..size-1}, largest subsets
// first. Within one subset size the subsets come in lexicographic order,
// starting from {0,1,...,k-1}.
//
// The enumeration yields 2^size - 1 subsets. It is lazy, finite and not
// restartable: create a new Subsets to enumerate again.
type Subsets struct {
	size int
	k    int
	cur  []int
	done bool
}

// NewSubsets creates an enumerator over the subsets of {0..size-1}.
func NewSubsets(size int) (*Subsets, error) {
	if size < 1 {
		return nil, fmt.Errorf("subsets of %d: %w", size, ErrInvalidCount)
	}
	return &Subsets{size: size}, nil
}

// Next returns the next subset, or false once every subset has been
// produced. The returned slice is never reused by the enumerator.
func (s *Subsets) Next() ([]int, bool) {
	if s.done {
		return nil, false
	}
	if s.cur == nil {
		s.k = s.size
		s.cur = Seq(s.k)
		return slices.Clone(s.cur), true
	}
	if s.step() {
		return slices.Clone(s.cur), true
	}
	s.k--
	if s.k == 0 {
		s.done = true
		s.cur = nil
		return nil, false
	}
	s.cur = Seq(s.k)
	return slices.Clone(s.cur), true
}

// step moves cur to the next combination of the same size. Position j can
// hold at most size-k+j; the rightmost position below its ceiling is
// incremented and everything after it is reset to follow on consecutively.
func (s *Subsets) step() bool {
	j := s.k - 1
	for j >= 0 && s.cur[j] == s.size-s.k+j {
		j--
	}
	if j < 0 {
		return false
	}
	s.cur[j]++
	for i := j + 1; i < s.k; i++ {
		s.cur[i] = s.cur[i-1] + 1
	}
	return true
}

// AllSubsets returns a lazy sequence over a fresh [Subsets] enumerator.
// For size < 1 the sequence is empty.
func AllSubsets(size int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		s, err := NewSubsets(size)
		if err != nil {
			return
		}
		for {
			sub, ok := s.Next()
			if !ok || !yield(sub) {
				return
			}
		}
	}
}

// SubsetCount returns 2^size - 1, the number of subsets [Subsets] yields.
func SubsetCount(size int) int {
	if size < 1 {
		return 0
	}
	return 1<<size - 1
}
