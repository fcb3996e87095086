package reply

import "context"

// Generator produces the localized reply of an intent.
type Generator interface {
	Respond(ctx context.Context, intent, language string) string
	SupportedLanguages() []string
	Intents() []string
}

// Selector picks one variant out of a non-empty pool.
type Selector interface {
	Select(variants []string) (string, bool)
}
