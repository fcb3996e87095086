package translation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"multilingual-support/pkg/log"
)

// Chain loads a pair from every loader in priority order. The resulting
// Translator tries the loaded handles in the same order at call time, so a
// glossary miss can still be served by a machine translator.
type Chain struct {
	l       log.Logger
	loaders []Loader
}

var _ Loader = (*Chain)(nil)

// NewChain creates a chain over loaders, highest priority first.
func NewChain(l log.Logger, loaders ...Loader) *Chain {
	return &Chain{l: l, loaders: loaders}
}

func (c *Chain) Name() string {
	names := make([]string, len(c.loaders))
	for i, ld := range c.loaders {
		names[i] = ld.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (c *Chain) Load(ctx context.Context, pair Pair) (Translator, error) {
	if len(c.loaders) == 0 {
		return nil, ErrNoLoaders
	}

	var (
		handles []namedTranslator
		errs    []error
	)
	for _, ld := range c.loaders {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		tr, err := ld.Load(ctx, pair)
		if err != nil {
			c.l.Debugf(ctx, "internal.translation.Chain.Load: %s %s: %v", ld.Name(), pair, err)
			errs = append(errs, fmt.Errorf("%s: %w", ld.Name(), err))
			continue
		}
		handles = append(handles, namedTranslator{name: ld.Name(), tr: tr})
	}

	if len(handles) == 0 {
		return nil, &LoadError{Pair: pair, Err: errors.Join(errs...)}
	}
	if len(handles) == 1 {
		return handles[0].tr, nil
	}
	return &chainTranslator{l: c.l, handles: handles}, nil
}

type namedTranslator struct {
	name string
	tr   Translator
}

type chainTranslator struct {
	l       log.Logger
	handles []namedTranslator
}

func (t *chainTranslator) Translate(ctx context.Context, text string) (string, error) {
	var errs []error
	for _, h := range t.handles {
		out, err := h.tr.Translate(ctx, text)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err == nil {
			err = ErrEmptyResult
		}
		errs = append(errs, fmt.Errorf("%s: %w", h.name, err))
	}
	return "", errors.Join(errs...)
}
