package fuel

import "errors"

var (
	// ErrUnknownVariant is returned when a variant name is neither simple nor recursive.
	ErrUnknownVariant = errors.New("variant must be one of: simple, recursive")
)
