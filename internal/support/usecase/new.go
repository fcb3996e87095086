package usecase

import (
	"regexp"

	"multilingual-support/internal/intent"
	"multilingual-support/internal/language"
	"multilingual-support/internal/reply"
	"multilingual-support/internal/support"
	"multilingual-support/internal/translation"
	"multilingual-support/pkg/log"
)

// DefaultMaxQueryRunes bounds the accepted query length.
const DefaultMaxQueryRunes = 2000

const maxLanguageCodeLen = 12

// languageCodePattern accepts ISO 639 codes with an optional region or script subtag.
var languageCodePattern = regexp.MustCompile(`^[a-z]{2,3}(-[a-z0-9]{2,8})?$`)

// Deps groups the pipeline stages. Translations may be nil.
type Deps struct {
	Detector     language.Detector
	Classifier   intent.Classifier
	Generator    reply.Generator
	Translations interface{ Stats() translation.Stats }

	Threshold     float64
	MaxQueryRunes int
}

// implUseCase is the private implementation of support.UseCase.
type implUseCase struct {
	l            log.Logger
	detector     language.Detector
	classifier   intent.Classifier
	generator    reply.Generator
	translations interface{ Stats() translation.Stats }

	threshold     float64
	maxQueryRunes int
}

var _ support.UseCase = (*implUseCase)(nil)

// New creates a new support UseCase implementation.
func New(l log.Logger, deps Deps) *implUseCase {
	maxRunes := deps.MaxQueryRunes
	if maxRunes <= 0 {
		maxRunes = DefaultMaxQueryRunes
	}
	return &implUseCase{
		l:             l,
		detector:      deps.Detector,
		classifier:    deps.Classifier,
		generator:     deps.Generator,
		translations:  deps.Translations,
		threshold:     deps.Threshold,
		maxQueryRunes: maxRunes,
	}
}
