package language

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"

	"multilingual-support/pkg/log"
)

type linguaDetector struct {
	l        log.Logger
	model    lingua.LanguageDetector
	codes    []string
	byLingua map[lingua.Language]string
	fallback string
	degraded bool
}

var _ Detector = (*linguaDetector)(nil)

// New builds a lingua backed Detector over codes. If the model cannot be
// built the failure is logged once and the detector runs degraded.
func New(ctx context.Context, l log.Logger, codes []string) Detector {
	d := &linguaDetector{l: l, fallback: DefaultLanguage}
	if len(codes) == 0 {
		codes = DefaultSupported
	}

	model, byLingua, err := buildModel(codes)
	if err != nil {
		l.Errorf(ctx, "internal.language.New: %v, falling back to %q", err, DefaultLanguage)
		d.degraded = true
		return d
	}

	d.model = model
	d.byLingua = byLingua
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		d.codes = append(d.codes, code)
	}
	l.Infof(ctx, "internal.language.New: detector ready for %v", d.codes)
	return d
}

// Degraded returns a Detector that always answers with the fallback result.
func Degraded() Detector {
	return &linguaDetector{fallback: DefaultLanguage, degraded: true}
}

func buildModel(codes []string) (model lingua.LanguageDetector, byLingua map[lingua.Language]string, err error) {
	byLingua = make(map[lingua.Language]string, len(codes))
	langs := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		lang, ok := linguaLanguages[code]
		if !ok {
			return nil, nil, fmt.Errorf("%w: unsupported language code %q", ErrModelUnavailable, code)
		}
		if _, dup := byLingua[lang]; dup {
			continue
		}
		byLingua[lang] = code
		langs = append(langs, lang)
	}

	// The builder panics on invalid input such as fewer than two languages.
	defer func() {
		if r := recover(); r != nil {
			model, byLingua = nil, nil
			err = fmt.Errorf("%w: %v", ErrModelUnavailable, r)
		}
	}()
	model = lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		WithPreloadedLanguageModels().
		Build()
	return model, byLingua, nil
}

func (d *linguaDetector) Detect(ctx context.Context, text string) DetectionResult {
	if d.degraded {
		return DetectionResult{Language: d.fallback, Confidence: DegradedConfidence, Degraded: true}
	}
	if !hasLetter(text) {
		return DetectionResult{Language: d.fallback}
	}

	best := DetectionResult{Language: d.fallback}
	for _, cv := range d.model.ComputeLanguageConfidenceValues(text) {
		code, ok := d.byLingua[cv.Language()]
		if !ok {
			continue
		}
		if cv.Value() > best.Confidence {
			best = DetectionResult{Language: code, Confidence: clamp(cv.Value())}
		}
	}
	return best
}

func (d *linguaDetector) SupportedLanguages() []string {
	if d.degraded {
		return nil
	}
	out := make([]string, len(d.codes))
	copy(out, d.codes)
	return out
}

func (d *linguaDetector) Degraded() bool {
	return d.degraded
}

func hasLetter(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
