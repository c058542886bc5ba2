package combo

import "iter"

// Item is either a single value or a sequence of values. It lets callers
// pass a mix of both to [Flatten] without runtime type inspection.
type Item[T any] struct {
	one    T
	many   []T
	isMany bool
}

// One wraps a single value.
func One[T any](v T) Item[T] { return Item[T]{one: v} }

// Many wraps a sequence of values. The slice is not copied.
func Many[T any](vs ...T) Item[T] { return Item[T]{many: vs, isMany: true} }

// IsMany reports whether the item holds a sequence.
func (it Item[T]) IsMany() bool { return it.isMany }

// Len returns 1 for a single value, or the sequence length.
func (it Item[T]) Len() int {
	if it.isMany {
		return len(it.many)
	}
	return 1
}

// Flatten yields the values of items in order, expanding sequences in place.
func Flatten[T any](items ...Item[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range items {
			if !it.isMany {
				if !yield(it.one) {
					return
				}
				continue
			}
			for _, v := range it.many {
				if !yield(v) {
					return
				}
			}
		}
	}
}
