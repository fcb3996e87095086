package main

import (
	"context"

	"multilingual-support/config"
	"multilingual-support/internal/translation"
	"multilingual-support/pkg/artifact"
	"multilingual-support/pkg/gtranslate"
	"multilingual-support/pkg/log"
)

// newTranslationLoader builds the loader chain in the configured provider
// order. Providers that cannot be configured are skipped with a warning.
func newTranslationLoader(ctx context.Context, logger log.Logger, cfg config.TranslationConfig) translation.Loader {
	var loaders []translation.Loader
	for _, provider := range cfg.Providers {
		switch provider {
		case "glossary":
			var fetcher artifact.Fetcher
			if cfg.Glossary.RemoteURL != "" {
				fetcher = artifact.NewHTTPFetcher(cfg.Glossary.RemoteURL)
			}
			loaders = append(loaders, translation.NewGlossary(artifact.NewLocal(cfg.Glossary.Dir, fetcher)))
			logger.Infof(ctx, "Translation provider glossary: %s", cfg.Glossary.Dir)

		case "google":
			client, err := gtranslate.New(ctx, gtranslate.Options{
				APIKey:          cfg.Google.APIKey,
				CredentialsFile: cfg.Google.CredentialsPath,
			})
			if err != nil {
				logger.Warnf(ctx, "Google Translate not available (optional): %v", err)
				continue
			}
			loaders = append(loaders, translation.NewGoogle(client))
			logger.Info(ctx, "Translation provider google initialized")
		}
	}
	return translation.NewChain(logger, loaders...)
}
