package language

import "context"

// Detector identifies the language of a text.
type Detector interface {
	Detect(ctx context.Context, text string) DetectionResult
	// SupportedLanguages returns the detector's native codes, or nil when degraded.
	SupportedLanguages() []string
	Degraded() bool
}
