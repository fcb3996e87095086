package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"multilingual-support/internal/middleware"
	"multilingual-support/internal/support"
	"multilingual-support/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	requestTimeout time.Duration
	middleware     middleware.Middleware

	// Support domain
	supportUC support.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	RequestTimeout time.Duration

	RateLimitEnabled bool
	RateLimitPerMin  int

	// Support domain
	SupportUseCase support.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		requestTimeout: cfg.RequestTimeout,
		middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimitEnabled,
			RateLimitPerMin:  cfg.RateLimitPerMin,
		}),
		supportUC: cfg.SupportUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.supportUC == nil {
		return errors.New("support use case is required")
	}
	return nil
}
