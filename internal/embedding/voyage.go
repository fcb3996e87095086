package embedding

import (
	"context"

	"multilingual-support/pkg/voyage"
)

// Voyage embeds through the Voyage AI API.
type Voyage struct {
	client voyage.IVoyage
}

var (
	_ Embedder         = (*Voyage)(nil)
	_ DocumentEmbedder = (*Voyage)(nil)
)

// NewVoyage wraps a Voyage client.
func NewVoyage(client voyage.IVoyage) *Voyage {
	return &Voyage{client: client}
}

func (e *Voyage) Name() string { return "voyage" }

// Prepare is a no-op: the remote model needs no corpus statistics.
func (e *Voyage) Prepare(ctx context.Context, corpus []string) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}
	return nil
}

func (e *Voyage) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.client.Embed(ctx, texts, voyage.InputQuery)
}

func (e *Voyage) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.client.Embed(ctx, texts, voyage.InputDocument)
}
