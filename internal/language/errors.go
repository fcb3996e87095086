package language

import "errors"

var (
	// ErrModelUnavailable is logged when the detection model cannot be built.
	ErrModelUnavailable = errors.New("language model unavailable")
)
