package pipeline

import (
	"context"
	"errors"
	"iter"

	"github.com/matzehuels/combikit/pkg/combo"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/islands"
)

// collect drains seq into a slice. With limit > 0 it stops after limit
// rows and reports whether anything was left. The context is checked
// between rows so large enumerations can be cancelled.
func collect[T any](ctx context.Context, seq iter.Seq[T], limit int) ([]T, bool, error) {
	var out []T
	for v := range seq {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		if limit > 0 && len(out) == limit {
			return out, true, nil
		}
		out = append(out, v)
	}
	return out, false, nil
}

// Classify attaches an error code to errors returned by the algorithm
// packages. Errors that already carry a code, and context errors, pass
// through.
func Classify(err error) error {
	if err == nil || cerrors.GetCode(err) != "" {
		return err
	}
	switch {
	case errors.Is(err, combo.ErrInvalidCount),
		errors.Is(err, combo.ErrCategoryCount),
		errors.Is(err, combo.ErrTooManyCategories),
		errors.Is(err, combo.ErrUniverseTooLarge):
		return cerrors.Wrap(cerrors.ErrCodeInvalidArgument, err, "invalid argument")
	case errors.Is(err, combo.ErrMaxValueTooSmall),
		errors.Is(err, combo.ErrEmptyGroup),
		errors.Is(err, combo.ErrNegativeIndex),
		errors.Is(err, combo.ErrValueOutOfRange),
		errors.Is(err, islands.ErrLinkOutOfRange):
		return cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "invalid input")
	case errors.Is(err, combo.ErrNotLeftmost),
		errors.Is(err, combo.ErrAlreadyStarted),
		errors.Is(err, combo.ErrNotStarted),
		errors.Is(err, combo.ErrExhausted):
		return cerrors.Wrap(cerrors.ErrCodeInvalidState, err, "invalid state")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return cerrors.Wrap(cerrors.ErrCodeInternal, err, "internal error")
}

