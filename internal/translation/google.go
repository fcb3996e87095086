package translation

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"multilingual-support/pkg/gtranslate"
)

// Google loads machine translators backed by Cloud Translation.
// A pair loads only when the API lists both of its languages.
type Google struct {
	client gtranslate.ITranslate

	mu        sync.Mutex
	languages []string
}

var _ Loader = (*Google)(nil)

// NewGoogle creates a Cloud Translation loader.
func NewGoogle(client gtranslate.ITranslate) *Google {
	return &Google{client: client}
}

func (g *Google) Name() string { return "google" }

func (g *Google) Load(ctx context.Context, pair Pair) (Translator, error) {
	langs, err := g.supported(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(langs, pair.Source) || !slices.Contains(langs, pair.Target) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPair, pair)
	}
	return &googleTranslator{client: g.client, pair: pair}, nil
}

// supported fetches the language list once; failures are retried on the next load.
func (g *Google) supported(ctx context.Context) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.languages != nil {
		return g.languages, nil
	}
	langs, err := g.client.Languages(ctx)
	if err != nil {
		return nil, err
	}
	g.languages = langs
	return langs, nil
}

type googleTranslator struct {
	client gtranslate.ITranslate
	pair   Pair
}

func (t *googleTranslator) Translate(ctx context.Context, text string) (string, error) {
	out, err := t.client.Translate(ctx, []string{text}, t.pair.Source, t.pair.Target)
	if err != nil {
		return "", err
	}
	if len(out) != 1 {
		return "", fmt.Errorf("%w: got %d results", ErrEmptyResult, len(out))
	}
	return out[0], nil
}
