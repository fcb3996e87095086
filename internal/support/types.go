package support

// --- UseCase Inputs ---

type ProcessQueryInput struct {
	Text              string
	PreferredLanguage string
}

// --- UseCase Outputs ---

// QueryResult is the externally visible outcome of a query.
type QueryResult struct {
	Query              string
	DetectedLanguage   string
	LanguageConfidence float64
	Intent             string
	IntentConfidence   float64
	Response           string
}

// Status describes the pipeline's degraded stages and translation cache.
type Status struct {
	DetectorDegraded     bool
	ClassifierDegraded   bool
	TranslationsLoaded   int
	TranslationsUnusable int
}

func (s Status) Degraded() bool {
	return s.DetectorDegraded || s.ClassifierDegraded
}
