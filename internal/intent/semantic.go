package intent

import (
	"context"
	"fmt"
	"math"

	"multilingual-support/internal/catalog"
	"multilingual-support/internal/embedding"
)

// Semantic classifies by cosine similarity against an immutable exemplar index.
type Semantic struct {
	embedder embedding.Embedder
	intents  []string
	index    map[string][][]float32
}

// NewSemantic prepares embedder on the exemplar corpus and embeds every exemplar.
func NewSemantic(ctx context.Context, embedder embedding.Embedder, exemplars catalog.ExemplarSet) (*Semantic, error) {
	corpus := exemplars.Corpus()
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrIndexBuild, embedding.ErrEmptyCorpus)
	}
	if err := embedder.Prepare(ctx, corpus); err != nil {
		return nil, fmt.Errorf("%w: prepare %s: %w", ErrIndexBuild, embedder.Name(), err)
	}

	vectors, err := embedding.EmbedDocuments(ctx, embedder, corpus)
	if err != nil {
		return nil, fmt.Errorf("%w: embed exemplars with %s: %w", ErrIndexBuild, embedder.Name(), err)
	}
	if len(vectors) != len(corpus) {
		return nil, fmt.Errorf("%w: got %d vectors for %d exemplars", ErrIndexBuild, len(vectors), len(corpus))
	}

	s := &Semantic{
		embedder: embedder,
		intents:  append([]string(nil), exemplars.Intents...),
		index:    make(map[string][][]float32, len(exemplars.Intents)),
	}
	offset := 0
	for _, name := range exemplars.Intents {
		n := len(exemplars.Examples[name])
		s.index[name] = vectors[offset : offset+n]
		offset += n
	}
	return s, nil
}

// Classify embeds text and returns the intent with the highest exemplar
// similarity. A later intent replaces the current best only when strictly
// greater, so declaration order breaks ties.
func (s *Semantic) Classify(ctx context.Context, text string, threshold float64) (ClassificationResult, error) {
	vecs, err := s.embedder.Embed(ctx, []string{text})
	if err != nil {
		return ClassificationResult{}, fmt.Errorf("%w: %w", ErrEmbedQuery, err)
	}
	if len(vecs) != 1 {
		return ClassificationResult{}, fmt.Errorf("%w: got %d vectors", ErrEmbedQuery, len(vecs))
	}
	query := vecs[0]

	best, bestScore := catalog.UnknownIntent, math.Inf(-1)
	for _, name := range s.intents {
		score := math.Inf(-1)
		for _, v := range s.index[name] {
			score = math.Max(score, embedding.Cosine(query, v))
		}
		if score > bestScore {
			best, bestScore = name, score
		}
	}

	conf := clampConfidence(bestScore)
	if bestScore < threshold {
		return ClassificationResult{Intent: catalog.UnknownIntent, Confidence: conf}, nil
	}
	return ClassificationResult{Intent: best, Confidence: conf}, nil
}

func clampConfidence(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, MaxConfidence)
}
