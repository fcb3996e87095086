package intent

import "context"

// Classifier maps a text to one of the declared intents.
type Classifier interface {
	Classify(ctx context.Context, text string, threshold float64) ClassificationResult
	SupportedIntents() []string
	Degraded() bool
}
