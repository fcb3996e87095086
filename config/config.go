package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Query understanding pipeline
	Catalog     CatalogConfig
	Language    LanguageConfig
	Embedding   EmbeddingConfig
	Intent      IntentConfig
	Translation TranslationConfig
	Reply       ReplyConfig
	Support     SupportConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	RequestTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// CatalogConfig points at the directory holding the intent, response and
// variant tables.
type CatalogConfig struct {
	Dir string
}

// LanguageConfig lists the detector candidates. Detection falls back to en.
type LanguageConfig struct {
	Supported []string
}

// EmbeddingConfig selects the embedding backend used by the intent classifier.
// Provider is one of "voyage", "tfidf" or "none".
type EmbeddingConfig struct {
	Provider string
	Voyage   VoyageConfig
}

type VoyageConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type IntentConfig struct {
	Threshold float64
}

// TranslationConfig configures the translation loaders, tried in Providers order.
type TranslationConfig struct {
	Providers []string
	Timeout   time.Duration
	Prewarm   []string
	Glossary  GlossaryConfig
	Google    GoogleTranslateConfig
}

type GlossaryConfig struct {
	Dir       string
	RemoteURL string
}

type GoogleTranslateConfig struct {
	APIKey          string
	CredentialsPath string
}

// ReplyConfig configures the response variety layer.
// Variety is one of "random", "first" or "off".
type ReplyConfig struct {
	Variety string
	Seed    int64
}

type SupportConfig struct {
	MaxQueryRunes int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RequestTimeout = viper.GetDuration("http_server.request_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Catalog
	cfg.Catalog.Dir = viper.GetString("catalog.dir")

	// Language detection
	cfg.Language.Supported = splitList(viper.GetStringSlice("language.supported"))

	// Embedding
	cfg.Embedding.Provider = strings.ToLower(viper.GetString("embedding.provider"))
	cfg.Embedding.Voyage.APIKey = expandEnvVar(viper.GetString("embedding.voyage.api_key"))
	cfg.Embedding.Voyage.Model = viper.GetString("embedding.voyage.model")
	cfg.Embedding.Voyage.BaseURL = viper.GetString("embedding.voyage.base_url")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Embedding.Voyage.APIKey = voyageKey
	}

	// Intent
	cfg.Intent.Threshold = viper.GetFloat64("intent.threshold")

	// Translation
	cfg.Translation.Providers = splitList(viper.GetStringSlice("translation.providers"))
	cfg.Translation.Timeout = viper.GetDuration("translation.timeout")
	cfg.Translation.Prewarm = splitList(viper.GetStringSlice("translation.prewarm"))
	cfg.Translation.Glossary.Dir = viper.GetString("translation.glossary.dir")
	cfg.Translation.Glossary.RemoteURL = viper.GetString("translation.glossary.remote_url")
	cfg.Translation.Google.APIKey = expandEnvVar(viper.GetString("translation.google.api_key"))
	cfg.Translation.Google.CredentialsPath = viper.GetString("translation.google.credentials_path")
	if googleKey := viper.GetString("google_translate_api_key"); googleKey != "" {
		cfg.Translation.Google.APIKey = googleKey
	}
	if googleCreds := viper.GetString("google_application_credentials"); googleCreds != "" {
		cfg.Translation.Google.CredentialsPath = googleCreds
	}

	// Reply
	cfg.Reply.Variety = strings.ToLower(viper.GetString("reply.variety"))
	cfg.Reply.Seed = viper.GetInt64("reply.seed")

	// Support
	cfg.Support.MaxQueryRunes = viper.GetInt("support.max_query_runes")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.request_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("catalog.dir", "./data")

	viper.SetDefault("language.supported", []string{"en", "es", "fr", "de", "it", "pt"})

	// Without an API key the voyage backend is unavailable and the
	// classifier runs on the keyword heuristic.
	viper.SetDefault("embedding.provider", "voyage")
	viper.SetDefault("embedding.voyage.model", "voyage-3")
	viper.SetDefault("embedding.voyage.base_url", "https://api.voyageai.com/v1")

	viper.SetDefault("intent.threshold", 0.5)

	viper.SetDefault("translation.providers", []string{"glossary", "google"})
	viper.SetDefault("translation.timeout", "5s")
	viper.SetDefault("translation.glossary.dir", "./data/glossaries")

	viper.SetDefault("reply.variety", "random")
	viper.SetDefault("reply.seed", 0)

	viper.SetDefault("support.max_query_runes", 2000)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Intent.Threshold < 0 || cfg.Intent.Threshold > 1 {
		return fmt.Errorf("intent.threshold must be within [0,1], got %v", cfg.Intent.Threshold)
	}
	switch cfg.Embedding.Provider {
	case "voyage", "tfidf", "none":
	default:
		return fmt.Errorf("unknown embedding.provider: %q", cfg.Embedding.Provider)
	}
	switch cfg.Reply.Variety {
	case "random", "first", "off":
	default:
		return fmt.Errorf("unknown reply.variety: %q", cfg.Reply.Variety)
	}
	for _, p := range cfg.Translation.Providers {
		if p != "glossary" && p != "google" {
			return fmt.Errorf("unknown translation provider: %q", p)
		}
	}
	if cfg.Support.MaxQueryRunes <= 0 {
		return fmt.Errorf("support.max_query_runes must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// An unset placeholder means "not configured".
		return os.Getenv(envVar)
	}

	return value
}

// splitList normalizes list values that may come from env as a single
// comma separated string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
