package artifact

import "context"

// Resolver returns the bytes of a named artifact.
type Resolver interface {
	Resolve(ctx context.Context, name string) ([]byte, error)
}

// Fetcher downloads an artifact from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}
