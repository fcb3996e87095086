package http

import (
	"github.com/gin-gonic/gin"

	"multilingual-support/internal/support"
	"multilingual-support/pkg/log"
)

// Handler is the public interface for the support HTTP delivery layer.
type Handler interface {
	ProcessQuery(c *gin.Context)
	SupportedLanguages(c *gin.Context)
	SupportedIntents(c *gin.Context)

	LegacyProcessQuery(c *gin.Context)
	LegacySupportedLanguages(c *gin.Context)
	LegacySupportedIntents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc support.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the support domain.
func New(l log.Logger, uc support.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
