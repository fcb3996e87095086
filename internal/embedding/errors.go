package embedding

import "errors"

var (
	// ErrModelUnavailable is returned when no embedding backend can be used.
	ErrModelUnavailable = errors.New("embedding model unavailable")
	ErrNotPrepared      = errors.New("embedder not prepared")
	ErrEmptyCorpus      = errors.New("empty corpus")
)
