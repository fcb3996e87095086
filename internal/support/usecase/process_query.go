package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"multilingual-support/internal/model"
	"multilingual-support/internal/support"
)

// ProcessQuery resolves the language, classifies the original text and
// builds the reply. A panic in any stage becomes support.ErrInternal.
func (uc *implUseCase) ProcessQuery(ctx context.Context, sc model.Scope, input support.ProcessQueryInput) (out support.QueryResult, err error) {
	if strings.TrimSpace(input.Text) == "" {
		return support.QueryResult{}, support.ErrEmptyQuery
	}
	if n := utf8.RuneCountInString(input.Text); n > uc.maxQueryRunes {
		return support.QueryResult{}, fmt.Errorf("%w: %d characters, max %d", support.ErrQueryTooLong, n, uc.maxQueryRunes)
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.support.usecase.ProcessQuery: panic request_id=%s query=%q: %v\n%s",
				sc.RequestID, input.Text, r, debug.Stack())
			out, err = support.QueryResult{}, support.ErrInternal
		}
	}()

	out = support.QueryResult{Query: input.Text}

	if preferred, ok := uc.preferredLanguage(ctx, input.PreferredLanguage); ok {
		out.DetectedLanguage = preferred
		out.LanguageConfidence = 1.0
	} else {
		detected := uc.detector.Detect(ctx, input.Text)
		out.DetectedLanguage = detected.Language
		out.LanguageConfidence = detected.Confidence
	}

	classified := uc.classifier.Classify(ctx, input.Text, uc.threshold)
	out.Intent = classified.Intent
	out.IntentConfidence = classified.Confidence

	out.Response = uc.generator.Respond(ctx, out.Intent, out.DetectedLanguage)

	uc.l.Infof(ctx, "internal.support.usecase.ProcessQuery: lang=%s (%.2f) intent=%s (%.2f) degraded=%t",
		out.DetectedLanguage, out.LanguageConfidence, out.Intent, out.IntentConfidence, classified.Degraded)
	return out, nil
}

// preferredLanguage normalizes a caller supplied language code. Codes that do
// not look like a language tag are ignored and detection runs instead.
func (uc *implUseCase) preferredLanguage(ctx context.Context, raw string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(raw))
	if code == "" {
		return "", false
	}
	if len(code) > maxLanguageCodeLen || !languageCodePattern.MatchString(code) {
		uc.l.Warnf(ctx, "internal.support.usecase.ProcessQuery: ignoring invalid preferred_language %.32q", raw)
		return "", false
	}
	return code, true
}
