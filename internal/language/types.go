package language

// DetectionResult is the outcome of a detection.
// Confidence is always in [0,1].
type DetectionResult struct {
	Language   string
	Confidence float64
	Degraded   bool
}
