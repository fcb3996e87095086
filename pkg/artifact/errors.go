package artifact

import "errors"

var (
	// ErrNotFound is returned when no source holds the artifact.
	ErrNotFound    = errors.New("artifact not found")
	ErrInvalidName = errors.New("invalid artifact name")
)
