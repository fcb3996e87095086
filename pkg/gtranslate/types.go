package gtranslate

import "net/http"

// Options configures the client. One of APIKey or CredentialsFile is required.
type Options struct {
	APIKey          string
	CredentialsFile string

	// Endpoint and HTTPClient override the defaults, mainly for tests.
	Endpoint   string
	HTTPClient *http.Client
}
