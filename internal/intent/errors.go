package intent

import "errors"

var (
	// ErrIndexBuild is returned when the exemplar index cannot be built.
	ErrIndexBuild = errors.New("exemplar index build failed")
	// ErrEmbedQuery is returned when the query text cannot be embedded.
	ErrEmbedQuery = errors.New("query embedding failed")
)
