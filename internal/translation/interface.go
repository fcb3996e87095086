package translation

import "context"

// Translator is a loaded translation handle for one Pair.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Loader produces the Translator of a Pair. Loading may be expensive.
type Loader interface {
	Name() string
	Load(ctx context.Context, pair Pair) (Translator, error)
}

// Resolver hands out cached translators.
type Resolver interface {
	Resolve(ctx context.Context, pair Pair) (Translator, error)
}
