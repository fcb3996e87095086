package catalog

import "errors"

var (
	// ErrMalformedTable is returned when a table file does not match its schema.
	ErrMalformedTable = errors.New("malformed table")
)
