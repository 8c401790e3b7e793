package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"wardrobe-ai/internal/middleware"
	suggestHTTP "wardrobe-ai/internal/suggest/delivery/http"
	suggestUC "wardrobe-ai/internal/suggest/usecase"
	"wardrobe-ai/internal/wardrobe"
)

// setupSuggestDomain initializes the outfit recommender over the wardrobe
// ledger and registers its routes.
func (srv HTTPServer) setupSuggestDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, ledger wardrobe.UseCase) error {
	uc := suggestUC.New(srv.l, srv.suggestCfg, ledger, srv.weather)

	h := suggestHTTP.New(srv.l, uc)

	suggestHTTP.RegisterRoutes(api.Group("/suggestions"), h, mw)

	srv.l.Infof(ctx, "Suggest domain registered")
	return nil
}
