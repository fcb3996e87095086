package support

import "errors"

var (
	ErrEmptyQuery   = errors.New("query text is required")
	ErrQueryTooLong = errors.New("query text is too long")

	// ErrInternal hides any unexpected stage failure from the caller.
	ErrInternal = errors.New("internal error")
)
