package gtranslate

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

const cloudTranslationScope = "https://www.googleapis.com/auth/cloud-translation"

// Client wraps the Cloud Translation v2 REST API.
type Client struct {
	svc *translate.Service
}

var _ ITranslate = (*Client)(nil)

// New creates a Cloud Translation client.
func New(ctx context.Context, opts Options) (*Client, error) {
	var clientOpts []option.ClientOption
	switch {
	case opts.APIKey != "":
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	case opts.CredentialsFile != "":
		data, err := os.ReadFile(opts.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, cloudTranslationScope)
		if err != nil {
			return nil, fmt.Errorf("parse credentials: %w", err)
		}
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	default:
		return nil, ErrNoCredentials
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	svc, err := translate.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// Translate translates texts from source to target, preserving order.
func (c *Client) Translate(ctx context.Context, texts []string, source, target string) ([]string, error) {
	if len(texts) == 0 {
		return nil, ErrNoInput
	}

	resp, err := c.svc.Translations.List(texts, target).
		Source(source).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to translate %s->%s: %w", source, target, err)
	}
	if len(resp.Translations) != len(texts) {
		return nil, fmt.Errorf("google translate returned %d translations for %d inputs", len(resp.Translations), len(texts))
	}

	out := make([]string, len(resp.Translations))
	for i, tr := range resp.Translations {
		out[i] = tr.TranslatedText
	}
	return out, nil
}

// Languages returns the codes the API can translate to and from.
func (c *Client) Languages(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Languages.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	out := make([]string, 0, len(resp.Languages))
	for _, lang := range resp.Languages {
		out = append(out, lang.Language)
	}
	return out, nil
}
