package usecase_test

import (
	"context"
	"sync/atomic"

	"multilingual-support/internal/intent"
	"multilingual-support/internal/language"
	"multilingual-support/internal/translation"
	"multilingual-support/pkg/log"
)

type mockDetector struct {
	calls    atomic.Int32
	result   language.DetectionResult
	labels   []string
	degraded bool
}

func (m *mockDetector) Detect(ctx context.Context, text string) language.DetectionResult {
	m.calls.Add(1)
	return m.result
}
func (m *mockDetector) SupportedLanguages() []string { return m.labels }
func (m *mockDetector) Degraded() bool               { return m.degraded }

type mockClassifier struct {
	result    intent.ClassificationResult
	intents   []string
	degraded  bool
	panicWith any
	gotText   string
	gotThresh float64
}

func (m *mockClassifier) Classify(ctx context.Context, text string, threshold float64) intent.ClassificationResult {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	m.gotText, m.gotThresh = text, threshold
	return m.result
}
func (m *mockClassifier) SupportedIntents() []string { return m.intents }
func (m *mockClassifier) Degraded() bool             { return m.degraded }

type mockGenerator struct {
	gotIntent, gotLang string
	langs              []string
	intents            []string
}

func (m *mockGenerator) Respond(ctx context.Context, intent, language string) string {
	m.gotIntent, m.gotLang = intent, language
	return "reply:" + intent + ":" + language
}
func (m *mockGenerator) SupportedLanguages() []string { return m.langs }
func (m *mockGenerator) Intents() []string            { return m.intents }

type mockStats struct{ stats translation.Stats }

func (m mockStats) Stats() translation.Stats { return m.stats }

type mockLogger struct {
	log.Logger
	errors atomic.Int32
	last   atomic.Value
}

func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.errors.Add(1)
	m.last.Store(template)
}
