package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend is returned when a cache backend cannot be reached.
var ErrBackend = errors.New("cache backend unavailable")

// Backoff retries an operation with a doubling delay between attempts.
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// DefaultBackoff is used when connecting to remote backends.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 500 * time.Millisecond}

// permanentError stops a Backoff early.
type permanentError struct{ err error }

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Permanent marks err so that [Backoff.Do] returns it without retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}

// Do calls fn until it succeeds, returns a [Permanent] error, or the
// attempts run out. The last error is returned unwrapped.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	delay := b.Delay

	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		var p permanentError
		if errors.As(err, &p) {
			return p.err
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}
