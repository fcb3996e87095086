package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultFetchTimeout = 30 * time.Second

	// maxArtifactBytes bounds a single download.
	maxArtifactBytes = 32 << 20
)

// HTTPFetcher downloads artifacts from baseURL/<name>.
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a fetcher for baseURL.
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultFetchTimeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (f *HTTPFetcher) WithHTTPClient(hc *http.Client) *HTTPFetcher {
	if hc != nil {
		f.httpClient = hc
	}
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch artifact %s: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch artifact %s: status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtifactBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", name, err)
	}
	if len(data) > maxArtifactBytes {
		return nil, fmt.Errorf("artifact %s exceeds %d bytes", name, maxArtifactBytes)
	}
	return data, nil
}
