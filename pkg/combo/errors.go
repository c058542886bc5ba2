package combo

import "errors"

var (
	// ErrInvalidCount is returned by [NewOdometer] and [NewSubsets] when the
	// requested size is not positive.
	ErrInvalidCount = errors.New("count must be positive")

	// ErrNotLeftmost is returned when [Column.Start] or [Column.Advance] is
	// called on a column that has a left neighbour. Only the leftmost column
	// drives the odometer.
	ErrNotLeftmost = errors.New("column is not the leftmost of its chain")

	// ErrAlreadyStarted is returned by [Column.Start] on a column that was
	// started before.
	ErrAlreadyStarted = errors.New("column already started")

	// ErrNotStarted is returned when a value is read, or the odometer
	// advanced, before [Column.Start] was called.
	ErrNotStarted = errors.New("column not started")

	// ErrExhausted is returned when a value is read, or the odometer advanced,
	// after the enumeration has completed.
	ErrExhausted = errors.New("enumeration exhausted")

	// ErrMaxValueTooSmall is returned by [NewGroupCombos] when the supplied
	// maximum value is lower than an index present in the groups.
	ErrMaxValueTooSmall = errors.New("max value is lower than the highest group index")

	// ErrEmptyGroup is returned by [NewGroupCombos] when a group has no indices.
	ErrEmptyGroup = errors.New("group must not be empty")

	// ErrNegativeIndex is returned by [NewGroupCombos] when a group contains
	// a negative index.
	ErrNegativeIndex = errors.New("group index must not be negative")

	// ErrUniverseTooLarge is returned by [NewGroupCombos] when the universe
	// 0..max cannot be represented.
	ErrUniverseTooLarge = errors.New("universe too large")

	// ErrValueOutOfRange is returned by [Constrained] when a set names a
	// value outside 0..n-1.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrCategoryCount is returned by [Distribute] when a category asks for
	// fewer than one slot.
	ErrCategoryCount = errors.New("each category needs at least one slot")

	// ErrTooManyCategories is returned by [Distribute] when the categories
	// cannot fit in the requested length.
	ErrTooManyCategories = errors.New("more category slots than requested length")
)
