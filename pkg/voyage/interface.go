package voyage

import (
	"context"
)

// IVoyage is the Voyage AI embeddings API.
// Implementations are safe for concurrent use.
type IVoyage interface {
	Embed(ctx context.Context, texts []string, inputType InputType) ([][]float32, error)
}
