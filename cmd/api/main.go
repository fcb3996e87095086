package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"multilingual-support/config"
	_ "multilingual-support/docs" // Swagger docs
	"multilingual-support/internal/catalog"
	"multilingual-support/internal/embedding"
	"multilingual-support/internal/httpserver"
	"multilingual-support/internal/intent"
	"multilingual-support/internal/language"
	"multilingual-support/internal/reply"
	"multilingual-support/internal/support/usecase"
	"multilingual-support/internal/translation"
	"multilingual-support/pkg/log"
)

// @title       Multilingual Support API
// @description Language detection, intent classification and localized replies for customer support messages.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Multilingual Support...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Configuration tables. A malformed table stops startup.
	cat, err := catalog.Load(ctx, cfg.Catalog.Dir, logger)
	if err != nil {
		fmt.Println("Failed to load catalog: ", err)
		os.Exit(1)
	}

	// 4. Language detection
	detector := language.New(ctx, logger, cfg.Language.Supported)

	// 5. Intent classification. Without an embedder the classifier runs on keywords.
	embedder, err := embedding.New(cfg.Embedding.Provider, embedding.VoyageOptions{
		APIKey:  cfg.Embedding.Voyage.APIKey,
		Model:   cfg.Embedding.Voyage.Model,
		BaseURL: cfg.Embedding.Voyage.BaseURL,
	})
	if err != nil {
		logger.Warnf(ctx, "Embedding backend %q not available: %v", cfg.Embedding.Provider, err)
	}
	classifier := intent.New(ctx, logger, embedder, cat.Exemplars)

	// 6. Translation cache
	cache := translation.NewCache(logger, newTranslationLoader(ctx, logger, cfg.Translation), cfg.Translation.Timeout)
	if len(cfg.Translation.Prewarm) > 0 {
		cache.Prewarm(ctx, catalog.CanonicalLanguage, cfg.Translation.Prewarm)
	}

	// 7. Reply generator
	generator := reply.New(logger, reply.Options{
		Responses:  cat.Responses,
		Variants:   cat.Variants,
		Translator: cache,
		Selector:   reply.NewSelector(cfg.Reply.Variety, cfg.Reply.Seed),
	})

	// 8. Support UseCase
	supportUC := usecase.New(logger, usecase.Deps{
		Detector:      detector,
		Classifier:    classifier,
		Generator:     generator,
		Translations:  cache,
		Threshold:     cfg.Intent.Threshold,
		MaxQueryRunes: cfg.Support.MaxQueryRunes,
	})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RequestTimeout:   cfg.HTTPServer.RequestTimeout,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitPerMin:  cfg.RateLimit.PerMin,
		SupportUseCase:   supportUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
