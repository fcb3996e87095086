package translation_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"multilingual-support/internal/translation"
	"multilingual-support/pkg/log"
)

type countingLoader struct {
	name  string
	loads atomic.Int32
	delay time.Duration
	fail  map[string]bool
	panic bool
	tr    translation.Translator
}

func (m *countingLoader) Name() string {
	if m.name == "" {
		return "counting"
	}
	return m.name
}

func (m *countingLoader) Load(ctx context.Context, pair translation.Pair) (translation.Translator, error) {
	m.loads.Add(1)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.panic {
		panic("model file corrupted")
	}
	if m.fail[pair.Target] {
		return nil, errors.New("no model for " + pair.String())
	}
	if m.tr != nil {
		return m.tr, nil
	}
	return prefixTranslator(pair.Target), nil
}

type prefixTranslator string

func (p prefixTranslator) Translate(ctx context.Context, text string) (string, error) {
	return "[" + string(p) + "] " + text, nil
}

type funcTranslator func(ctx context.Context, text string) (string, error)

func (f funcTranslator) Translate(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

type fakeGoogle struct {
	langs     []string
	langErr   error
	langCalls atomic.Int32
	calls     atomic.Int32
}

func (f *fakeGoogle) Translate(ctx context.Context, texts []string, source, target string) ([]string, error) {
	f.calls.Add(1)
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = "mt(" + source + "->" + target + "): " + text
	}
	return out, nil
}

func (f *fakeGoogle) Languages(ctx context.Context) ([]string, error) {
	f.langCalls.Add(1)
	if f.langErr != nil {
		return nil, f.langErr
	}
	return f.langs, nil
}

func nopLogger() log.Logger { return log.NewNop() }
