package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	insightsHTTP "wardrobe-ai/internal/insights/delivery/http"
	insightsUC "wardrobe-ai/internal/insights/usecase"
	"wardrobe-ai/internal/middleware"
	"wardrobe-ai/internal/wardrobe"
)

// setupInsightsDomain initializes the analytics domain over the wardrobe
// snapshot and registers its routes.
func (srv HTTPServer) setupInsightsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, source wardrobe.UseCase) error {
	uc := insightsUC.New(srv.l, source)

	h := insightsHTTP.New(srv.l, uc)

	insightsHTTP.RegisterRoutes(api.Group("/insights"), h, mw)

	srv.l.Infof(ctx, "Insights domain registered")
	return nil
}
