package errors

// ValidateSize checks an enumeration size against 1..max.
// A max of zero or less disables the upper bound.
func ValidateSize(name string, n, max int) error {
	if n < 1 {
		return New(ErrCodeInvalidArgument, "%s must be at least 1, got %d", name, n)
	}
	if max > 0 && n > max {
		return New(ErrCodeTooLarge, "%s %d exceeds the configured limit of %d", name, n, max)
	}
	return nil
}

// ValidateLimit checks a result limit. Zero means "no limit"; negative
// values are rejected.
func ValidateLimit(limit int) error {
	if limit < 0 {
		return New(ErrCodeInvalidArgument, "limit must not be negative, got %d", limit)
	}
	return nil
}
