package translation

import "time"

const (
	// DefaultLoadTimeout bounds a single pair load.
	DefaultLoadTimeout = 30 * time.Second

	prewarmConcurrency = 4
)
