package intent

import (
	"context"
	"math"
	"strings"

	"multilingual-support/internal/catalog"
	"multilingual-support/internal/embedding"
)

type keyword struct {
	tokens []string
}

// Keyword scores intents by keyword hits: full matches count 1, prefix
// matches of single word keywords count 0.5.
type Keyword struct {
	intents []string
	vocab   map[string][]keyword
}

// NewKeyword builds the heuristic for the intents declared in exemplars.
func NewKeyword(exemplars catalog.ExemplarSet) *Keyword {
	k := &Keyword{vocab: make(map[string][]keyword, len(exemplars.Intents))}
	for _, name := range exemplars.Intents {
		seen := make(map[string]struct{})
		var words []keyword
		add := func(phrase string) {
			tokens := embedding.Tokenize(phrase)
			if len(tokens) == 0 {
				return
			}
			key := strings.Join(tokens, " ")
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			words = append(words, keyword{tokens: tokens})
		}
		for _, phrase := range keywordLists[name] {
			add(phrase)
		}
		for _, phrase := range exemplars.Examples[name] {
			add(phrase)
		}
		k.intents = append(k.intents, name)
		k.vocab[name] = words
	}
	return k
}

// Score returns the raw keyword score of every declared intent, in order.
func (k *Keyword) Score(text string) []float64 {
	tokens := embedding.Tokenize(text)
	scores := make([]float64, len(k.intents))
	for i, name := range k.intents {
		var full, partial float64
		for _, kw := range k.vocab[name] {
			if containsSequence(tokens, kw.tokens) {
				full++
			}
			if len(kw.tokens) == 1 && hasPrefixToken(tokens, kw.tokens[0]) {
				partial++
			}
		}
		scores[i] = full + partialMatchWeight*partial
	}
	return scores
}

// Classify picks the best scoring intent. Earlier intents win ties.
func (k *Keyword) Classify(ctx context.Context, text string, threshold float64) ClassificationResult {
	best, bestScore := "", 0.0
	for i, score := range k.Score(text) {
		if score > bestScore {
			best, bestScore = k.intents[i], score
		}
	}

	if bestScore == 0 {
		if len(strings.Fields(text)) <= shortInputTokens {
			return ClassificationResult{Intent: shortInputIntent, Confidence: shortInputConfidence}
		}
		return ClassificationResult{Intent: catalog.UnknownIntent}
	}

	conf := math.Min(keywordBase+keywordStep*bestScore, MaxConfidence)
	if conf < threshold {
		return ClassificationResult{Intent: catalog.UnknownIntent, Confidence: conf}
	}
	return ClassificationResult{Intent: best, Confidence: conf}
}

func containsSequence(tokens, seq []string) bool {
	if len(seq) == 0 || len(seq) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(seq) <= len(tokens); i++ {
		for j := range seq {
			if tokens[i+j] != seq[j] {
				continue outer
			}
		}
		return true
	}
	return false
}

func hasPrefixToken(tokens []string, prefix string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}
