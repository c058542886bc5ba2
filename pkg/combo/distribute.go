package combo

import (
	"fmt"
	"math/rand/v2"
)

// Distribute assigns one of len(mins) categories to each of length slots.
// Category i receives at least mins[i] slots; the remaining slots are drawn
// uniformly from all categories, and the result is shuffled with r.
//
// This is the shape of a password generator that needs, say, at least one
// digit and two symbols: pick the category per position here, then draw a
// character from that category.
func Distribute(r *rand.Rand, length int, mins []int) ([]int, error) {
	if len(mins) == 0 {
		return nil, fmt.Errorf("no categories: %w", ErrCategoryCount)
	}
	if len(mins) > length {
		return nil, fmt.Errorf("%d categories for length %d: %w", len(mins), length, ErrTooManyCategories)
	}
	total := 0
	for i, m := range mins {
		if m < 1 {
			return nil, fmt.Errorf("category %d wants %d: %w", i, m, ErrCategoryCount)
		}
		total += m
	}
	if total > length {
		return nil, fmt.Errorf("%d required slots for length %d: %w", total, length, ErrTooManyCategories)
	}

	out := make([]int, 0, length)
	for cat, m := range mins {
		for range m {
			out = append(out, cat)
		}
	}
	for len(out) < length {
		out = append(out, r.IntN(len(mins)))
	}
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out, nil
}
