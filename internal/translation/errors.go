package translation

import "errors"

var (
	// ErrUnresolvable marks a pair no loader can serve. The pair is tombstoned.
	ErrUnresolvable = errors.New("translation unresolvable")

	ErrNoLoaders       = errors.New("no translation loaders configured")
	ErrSameLanguage    = errors.New("source and target language are the same")
	ErrNoEntry         = errors.New("no glossary entry")
	ErrEmptyResult     = errors.New("empty translation")
	ErrUnsupportedPair = errors.New("language pair not supported")
)
