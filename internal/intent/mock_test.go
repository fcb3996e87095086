package intent_test

import (
	"context"
	"errors"
	"sync/atomic"

	"multilingual-support/pkg/log"
)

// fakeEmbedder maps known texts to fixed vectors; anything else fails when
// failUnknown is set and maps to fallback otherwise.
type fakeEmbedder struct {
	vectors     map[string][]float32
	fallback    []float32
	prepareErr  error
	failUnknown bool
	calls       atomic.Int32
}

func (f *fakeEmbedder) Name() string { return "fake" }

func (f *fakeEmbedder) Prepare(ctx context.Context, corpus []string) error { return f.prepareErr }

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls.Add(1)
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v, ok := f.vectors[text]
		if !ok {
			if f.failUnknown {
				return nil, errors.New("embedding backend down")
			}
			v = f.fallback
		}
		out[i] = v
	}
	return out, nil
}

type mockLogger struct {
	log.Logger
	errors atomic.Int32
	warns  atomic.Int32
}

func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) { m.warns.Add(1) }
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors.Add(1)
}
