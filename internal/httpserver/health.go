package httpserver

import (
	"multilingual-support/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Multilingual support assistant"
	HealthVersion = "1.0.0"
	ServiceName   = "multilingual-support"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":              "healthy",
		"message":             HealthMessage,
		"version":             HealthVersion,
		"service":             ServiceName,
		"service_initialized": true,
	})
}

// readyCheck reports which pipeline stages run degraded. A degraded stage
// still serves traffic, so the status code stays 200.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic and which stages are degraded
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	st := srv.supportUC.Status(c.Request.Context())

	status := "ready"
	if st.Degraded() {
		status = "degraded"
	}

	response.OK(c, gin.H{
		"status":                status,
		"service":               ServiceName,
		"version":               HealthVersion,
		"detector_degraded":     st.DetectorDegraded,
		"classifier_degraded":   st.ClassifierDegraded,
		"translations_loaded":   st.TranslationsLoaded,
		"translations_unusable": st.TranslationsUnusable,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
