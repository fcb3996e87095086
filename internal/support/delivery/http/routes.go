package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the versioned support routes onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/query", h.ProcessQuery)
	rg.GET("/languages", h.SupportedLanguages)
	rg.GET("/intents", h.SupportedIntents)
}

// RegisterLegacyRoutes maps the unversioned first-generation routes,
// which answer with bare JSON instead of the response envelope.
func RegisterLegacyRoutes(r gin.IRoutes, h Handler) {
	r.POST("/process_query", h.LegacyProcessQuery)
	r.GET("/supported_languages", h.LegacySupportedLanguages)
	r.GET("/supported_intents", h.LegacySupportedIntents)
}
