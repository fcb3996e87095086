package httpserver

import (
	"context"

	supportHTTP "multilingual-support/internal/support/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupSupportDomain registers /api/v1/support/* and the legacy routes.
func (srv HTTPServer) setupSupportDomain(ctx context.Context, rg *gin.RouterGroup) error {
	h := supportHTTP.New(srv.l, srv.supportUC)

	supportHTTP.RegisterRoutes(rg.Group("/api/v1/support"), h)
	supportHTTP.RegisterLegacyRoutes(rg, h)

	srv.l.Infof(ctx, "Support domain registered")
	return nil
}
