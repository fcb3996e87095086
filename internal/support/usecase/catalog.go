package usecase

import (
	"context"
	"sort"

	"multilingual-support/internal/support"
)

// SupportedLanguages is the union of reply languages and detector labels.
func (uc *implUseCase) SupportedLanguages(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(codes []string) {
		for _, code := range codes {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	add(uc.generator.SupportedLanguages())
	add(uc.detector.SupportedLanguages())
	sort.Strings(out)
	return out
}

// SupportedIntents falls back to the reply table when a degraded classifier
// has no declared intents.
func (uc *implUseCase) SupportedIntents(ctx context.Context) []string {
	intents := uc.classifier.SupportedIntents()
	if len(intents) == 0 && uc.classifier.Degraded() {
		return uc.generator.Intents()
	}
	return intents
}

func (uc *implUseCase) Status(ctx context.Context) support.Status {
	st := support.Status{
		DetectorDegraded:   uc.detector.Degraded(),
		ClassifierDegraded: uc.classifier.Degraded(),
	}
	if uc.translations != nil {
		stats := uc.translations.Stats()
		st.TranslationsLoaded = stats.Loaded
		st.TranslationsUnusable = stats.Tombstoned
	}
	return st
}
