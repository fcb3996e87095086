package gtranslate

import "errors"

var (
	ErrNoCredentials = errors.New("google translate: API key or credentials file is required")
	ErrNoInput       = errors.New("google translate: no texts provided")
)
