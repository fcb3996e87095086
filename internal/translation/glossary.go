package translation

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"multilingual-support/pkg/artifact"
)

// Glossary loads phrase tables named "<source>-<target>.yaml" from an
// artifact resolver. Each table maps a source phrase to its translation.
type Glossary struct {
	resolver artifact.Resolver
}

var _ Loader = (*Glossary)(nil)

// NewGlossary creates a glossary loader.
func NewGlossary(resolver artifact.Resolver) *Glossary {
	return &Glossary{resolver: resolver}
}

func (g *Glossary) Name() string { return "glossary" }

// ArtifactName returns the artifact holding the glossary of pair.
func ArtifactName(pair Pair) string {
	return pair.Source + "-" + pair.Target + ".yaml"
}

func (g *Glossary) Load(ctx context.Context, pair Pair) (Translator, error) {
	data, err := g.resolver.Resolve(ctx, ArtifactName(pair))
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse glossary %s: %w", ArtifactName(pair), err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("glossary %s is empty", ArtifactName(pair))
	}

	phrases := make(map[string]string, len(raw))
	for src, dst := range raw {
		if strings.TrimSpace(dst) == "" {
			continue
		}
		phrases[normalizePhrase(src)] = dst
	}
	return &glossaryTranslator{pair: pair, phrases: phrases}, nil
}

type glossaryTranslator struct {
	pair    Pair
	phrases map[string]string
}

func (t *glossaryTranslator) Translate(ctx context.Context, text string) (string, error) {
	if out, ok := t.phrases[normalizePhrase(text)]; ok {
		return out, nil
	}
	return "", fmt.Errorf("%w for %s", ErrNoEntry, t.pair)
}

func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
