// Package combo provides permutation and combination enumerators for index
// assignment problems.
//
// # Overview
//
// Every enumerator here works on plain integer indices. Callers map the
// indices back onto their own values; the package knows nothing about what
// the indices stand for.
//
//   - [Odometer]: assigns distinct values 0..n-1 to n columns, producing all
//     n! assignments (Latin-square style rows) in lexicographic order
//   - [Subsets]: every non-empty subset of {0..size-1}, largest first
//   - [GroupCombos]: partitions of 0..max built from whole caller-supplied
//     groups plus leftover singletons
//   - [Distribute]: random category-per-slot assignment with a minimum per
//     category
//
// # The Odometer
//
// The odometer is a chain of columns. Each column only knows its left and
// right neighbour. When a column advances, every column to its right resets
// and looks for the first value nobody further left holds, the same way the
// wheels of a mechanical counter roll over:
//
//	o, _ := combo.NewOdometer(3)
//	_ = o.Start()            // [0 1 2]
//	_, _ = o.Advance()       // [0 2 1]
//	_, _ = o.Advance()       // [1 0 2]
//
// Only the leftmost column may be started or advanced. Reading a value
// before Start or after the last Advance returned false is an error
// ([ErrNotStarted], [ErrExhausted]).
//
// # Lazy enumeration
//
// [Subsets] and [GroupCombos] are pull based: Next does a bounded amount of
// work and returns one result. They are not restartable and not safe for
// concurrent use. [AllSubsets], [AllGroupCombos] and [AllPermutations] wrap
// a fresh enumerator in an iter.Seq for range loops.
//
// The number of results grows fast: [Factorial] for the odometer and
// 2^size - 1 for [Subsets]. Use a limit or stop ranging early for large
// inputs.
package combo
