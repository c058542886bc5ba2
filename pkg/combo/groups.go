package combo

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// GroupCombos enumerates the ways whole groups of indices can be combined
// into a partition of the universe 0..max.
//
// The first partition is all singletons. Then, for each group in input
// order, the group is tried on its own and together with every subset of
// the groups after it (picked with a [Subsets] enumerator). A candidate is
// kept only when the chosen groups share no index; indices the chosen
// groups do not cover are added as singletons.
//
// GroupCombos is lazy and not restartable.
type GroupCombos struct {
	groups [][]int
	max    int

	baseline bool
	outer    int
	alone    bool
	inner    *Subsets
	done     bool
}

// NewGroupCombos validates groups and prepares the enumeration. maxValue,
// when non-nil, widens the universe to 0..*maxValue and must not be lower
// than any index present in groups. The universe 0..max is allocated per
// partition, so callers taking untrusted input should bound it first.
func NewGroupCombos(groups [][]int, maxValue *int) (*GroupCombos, error) {
	hi := -1
	copied := make([][]int, len(groups))
	for i, g := range groups {
		if len(g) == 0 {
			return nil, fmt.Errorf("group %d: %w", i, ErrEmptyGroup)
		}
		for _, v := range g {
			if v < 0 {
				return nil, fmt.Errorf("group %d: index %d: %w", i, v, ErrNegativeIndex)
			}
			hi = max(hi, v)
		}
		copied[i] = slices.Clone(g)
	}
	if maxValue != nil {
		if *maxValue < 0 {
			return nil, fmt.Errorf("max value %d: %w", *maxValue, ErrNegativeIndex)
		}
		if *maxValue < hi {
			return nil, fmt.Errorf("max value %d below index %d: %w", *maxValue, hi, ErrMaxValueTooSmall)
		}
		hi = *maxValue
	}
	if hi == math.MaxInt {
		return nil, fmt.Errorf("index %d: %w", hi, ErrUniverseTooLarge)
	}
	return &GroupCombos{groups: copied, max: hi}, nil
}

// Max returns the highest index of the universe, or -1 when it is empty.
func (g *GroupCombos) Max() int { return g.max }

// Next returns the next partition, or false when the enumeration is done.
// Each partition is a fresh allocation.
func (g *GroupCombos) Next() ([][]int, bool) {
	for !g.done {
		if !g.baseline {
			g.baseline = true
			return g.build(nil), true
		}
		if g.outer >= len(g.groups) {
			g.done = true
			break
		}
		if !g.alone {
			g.alone = true
			if p, ok := g.candidate([]int{g.outer}); ok {
				return p, true
			}
			continue
		}
		if g.inner == nil {
			rest := len(g.groups) - g.outer - 1
			if rest < 1 {
				g.nextOuter()
				continue
			}
			g.inner, _ = NewSubsets(rest)
		}
		sub, ok := g.inner.Next()
		if !ok {
			g.nextOuter()
			continue
		}
		chosen := make([]int, 0, len(sub)+1)
		chosen = append(chosen, g.outer)
		for _, s := range sub {
			chosen = append(chosen, g.outer+1+s)
		}
		if p, ok := g.candidate(chosen); ok {
			return p, true
		}
	}
	return nil, false
}

func (g *GroupCombos) nextOuter() {
	g.outer++
	g.alone = false
	g.inner = nil
}

// candidate builds the partition for the chosen groups if they are disjoint.
func (g *GroupCombos) candidate(chosen []int) ([][]int, bool) {
	seen := make([]bool, g.max+1)
	for _, gi := range chosen {
		for _, v := range g.groups[gi] {
			if seen[v] {
				return nil, false
			}
			seen[v] = true
		}
	}
	return g.build(chosen), true
}

// build returns the chosen groups followed by singletons for every index
// they leave uncovered.
func (g *GroupCombos) build(chosen []int) [][]int {
	covered := make([]bool, g.max+1)
	out := make([][]int, 0, g.max+1)
	for _, gi := range chosen {
		out = append(out, slices.Clone(g.groups[gi]))
		for _, v := range g.groups[gi] {
			covered[v] = true
		}
	}
	for v := 0; v <= g.max; v++ {
		if !covered[v] {
			out = append(out, []int{v})
		}
	}
	return out
}

// AllGroupCombos validates groups and returns a lazy sequence over a fresh
// [GroupCombos].
func AllGroupCombos(groups [][]int, maxValue *int) (iter.Seq[[][]int], error) {
	gc, err := NewGroupCombos(groups, maxValue)
	if err != nil {
		return nil, err
	}
	return func(yield func([][]int) bool) {
		for {
			p, ok := gc.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}, nil
}

