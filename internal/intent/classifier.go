package intent

import (
	"context"
	"fmt"

	"multilingual-support/internal/catalog"
	"multilingual-support/internal/embedding"
	"multilingual-support/pkg/log"
)

type classifier struct {
	l        log.Logger
	semantic *Semantic
	keyword  *Keyword
	intents  []string
}

var _ Classifier = (*classifier)(nil)

// New builds the semantic classifier over exemplars. A nil embedder or a
// failed index build is logged once and the classifier runs on the keyword
// heuristic.
func New(ctx context.Context, l log.Logger, embedder embedding.Embedder, exemplars catalog.ExemplarSet) Classifier {
	c := &classifier{
		l:       l,
		keyword: NewKeyword(exemplars),
		intents: append([]string(nil), exemplars.Intents...),
	}

	if embedder == nil {
		l.Errorf(ctx, "internal.intent.New: %v, using keyword heuristic", embedding.ErrModelUnavailable)
		return c
	}

	semantic, err := NewSemantic(ctx, embedder, exemplars)
	if err != nil {
		l.Errorf(ctx, "internal.intent.New: %v, using keyword heuristic",
			fmt.Errorf("%w: %w", embedding.ErrModelUnavailable, err))
		return c
	}
	c.semantic = semantic
	l.Infof(ctx, "internal.intent.New: semantic index ready with %s over %d intents", embedder.Name(), len(c.intents))
	return c
}

func (c *classifier) Classify(ctx context.Context, text string, threshold float64) ClassificationResult {
	if c.semantic == nil {
		res := c.keyword.Classify(ctx, text, threshold)
		res.Degraded = true
		return res
	}

	res, err := c.semantic.Classify(ctx, text, threshold)
	if err != nil {
		c.l.Warnf(ctx, "internal.intent.Classify: %v, using keyword heuristic", err)
		res = c.keyword.Classify(ctx, text, threshold)
		res.Degraded = true
	}
	return res
}

func (c *classifier) SupportedIntents() []string {
	return append([]string(nil), c.intents...)
}

func (c *classifier) Degraded() bool {
	return c.semantic == nil
}
