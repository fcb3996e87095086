package embedding

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// TFIDF is a local embedder whose vocabulary is built from the exemplar corpus.
// Multilingual input works because tokens are plain letter/digit runs.
type TFIDF struct {
	mu         sync.RWMutex
	vocabulary map[string]int
	idf        []float32
	prepared   bool
}

var _ Embedder = (*TFIDF)(nil)

// NewTFIDF returns an unprepared TF-IDF embedder.
func NewTFIDF() *TFIDF {
	return &TFIDF{vocabulary: make(map[string]int)}
}

func (e *TFIDF) Name() string { return "tfidf" }

// Prepare builds the vocabulary and smoothed IDF weights.
func (e *TFIDF) Prepare(ctx context.Context, corpus []string) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return fmt.Errorf("%w: no tokens in corpus", ErrEmptyCorpus)
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float32, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1)
	}

	e.mu.Lock()
	e.vocabulary, e.idf, e.prepared = vocabulary, idf, true
	e.mu.Unlock()
	return nil
}

// Embed returns L2 normalized TF-IDF vectors. Texts without known tokens
// map to the zero vector.
func (e *TFIDF) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.prepared {
		return nil, ErrNotPrepared
	}

	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = e.vector(text)
	}
	return out, nil
}

func (e *TFIDF) vector(text string) []float32 {
	vec := make([]float32, len(e.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range Tokenize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float32(count) / float32(total) * e.idf[idx]
	}
	Normalize(vec)
	return vec
}

// Tokenize lowercases text and splits it into letter/digit runs.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
