package support

import (
	"context"

	"multilingual-support/internal/model"
)

// UseCase is the query pipeline: language detection, intent classification
// and localized reply.
type UseCase interface {
	// ProcessQuery answers one customer message. Only ErrEmptyQuery,
	// ErrQueryTooLong and ErrInternal are returned.
	ProcessQuery(ctx context.Context, sc model.Scope, input ProcessQueryInput) (QueryResult, error)

	// SupportedLanguages lists every language a reply can be produced in, sorted.
	SupportedLanguages(ctx context.Context) []string

	// SupportedIntents lists the classifiable intents in declaration order.
	SupportedIntents(ctx context.Context) []string

	// Status reports which stages run degraded.
	Status(ctx context.Context) Status
}
