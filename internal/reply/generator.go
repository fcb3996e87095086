package reply

import (
	"context"
	"errors"
	"strings"

	"multilingual-support/internal/catalog"
	"multilingual-support/internal/translation"
	"multilingual-support/pkg/log"
)

type generator struct {
	l          log.Logger
	responses  catalog.ResponseTable
	variants   catalog.VariantTable
	translator translation.Resolver
	selector   Selector
}

var _ Generator = (*generator)(nil)

// Options groups the generator's collaborators. Translator and Selector may be nil.
type Options struct {
	Responses  catalog.ResponseTable
	Variants   catalog.VariantTable
	Translator translation.Resolver
	Selector   Selector
}

// New creates a Generator over the response table.
func New(l log.Logger, opts Options) Generator {
	sel := opts.Selector
	if sel == nil {
		sel = NoVariety{}
	}
	return &generator{
		l:          l,
		responses:  opts.Responses,
		variants:   opts.Variants,
		translator: opts.Translator,
		selector:   sel,
	}
}

// Respond never returns an empty string for a table that passed validation.
func (g *generator) Respond(ctx context.Context, intent, language string) string {
	templates, ok := g.responses.Lookup(intent)
	if !ok {
		intent = catalog.UnknownIntent
		templates, _ = g.responses.Lookup(intent)
	}

	if language == catalog.CanonicalLanguage {
		if text, ok := g.selector.Select(g.variants[intent]); ok {
			return text
		}
	}

	if text, ok := templates.Get(language); ok {
		return text
	}

	en, hasEN := templates.Get(catalog.CanonicalLanguage)
	if hasEN {
		if text, ok := g.translate(ctx, en, language); ok {
			return text
		}
		return en
	}

	text, _ := templates.First()
	return text
}

func (g *generator) translate(ctx context.Context, text, language string) (string, bool) {
	if g.translator == nil || language == "" {
		return "", false
	}
	pair := translation.Pair{Source: catalog.CanonicalLanguage, Target: language}

	tr, err := g.translator.Resolve(ctx, pair)
	if err != nil {
		if !errors.Is(err, translation.ErrUnresolvable) {
			g.l.Warnf(ctx, "internal.reply.Respond: resolve %s: %v", pair, err)
		}
		return "", false
	}

	out, err := tr.Translate(ctx, text)
	if err != nil || strings.TrimSpace(out) == "" {
		g.l.Warnf(ctx, "internal.reply.Respond: translate %s: %v", pair, err)
		return "", false
	}
	return out, true
}

func (g *generator) SupportedLanguages() []string {
	return g.responses.Languages()
}

func (g *generator) Intents() []string {
	return append([]string(nil), g.responses.Intents...)
}
