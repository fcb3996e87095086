package gtranslate

import "context"

// ITranslate is the subset of Google Cloud Translation used by the service.
// Implementations are safe for concurrent use.
type ITranslate interface {
	Translate(ctx context.Context, texts []string, source, target string) ([]string, error)
	Languages(ctx context.Context) ([]string, error)
}
