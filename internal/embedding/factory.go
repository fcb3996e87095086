package embedding

import (
	"fmt"

	"multilingual-support/pkg/voyage"
)

const (
	ProviderVoyage = "voyage"
	ProviderTFIDF  = "tfidf"
	ProviderNone   = "none"
)

// VoyageOptions configures the voyage provider.
type VoyageOptions struct {
	APIKey  string
	Model   string
	BaseURL string
}

// New builds the embedder for provider. ProviderNone and a voyage provider
// without credentials return ErrModelUnavailable.
func New(provider string, opts VoyageOptions) (Embedder, error) {
	switch provider {
	case ProviderTFIDF:
		return NewTFIDF(), nil
	case ProviderVoyage:
		client, err := voyage.New(opts.APIKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		client.WithModel(opts.Model).WithBaseURL(opts.BaseURL)
		return NewVoyage(client), nil
	case ProviderNone, "":
		return nil, fmt.Errorf("%w: no provider configured", ErrModelUnavailable)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrModelUnavailable, provider)
	}
}
