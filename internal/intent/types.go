package intent

// ClassificationResult is the outcome of a classification.
// Confidence is always in [0, MaxConfidence].
type ClassificationResult struct {
	Intent     string
	Confidence float64
	Degraded   bool
}
