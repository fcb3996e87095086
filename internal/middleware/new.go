package middleware

import (
	"multilingual-support/pkg/log"
)

// Config configures the request-scoped middlewares.
type Config struct {
	RateLimitEnabled bool
	RateLimitPerMin  int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
