package embedding

import "context"

// Embedder turns texts into fixed size vectors.
// Prepare is called once with the exemplar corpus before any Embed call;
// remote backends may treat it as a no-op.
type Embedder interface {
	Name() string
	Prepare(ctx context.Context, corpus []string) error
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// DocumentEmbedder is implemented by backends that embed indexed documents
// differently from queries.
type DocumentEmbedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// EmbedDocuments embeds texts as index documents when e supports it.
func EmbedDocuments(ctx context.Context, e Embedder, texts []string) ([][]float32, error) {
	if d, ok := e.(DocumentEmbedder); ok {
		return d.EmbedDocuments(ctx, texts)
	}
	return e.Embed(ctx, texts)
}
