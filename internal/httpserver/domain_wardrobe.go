package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"wardrobe-ai/internal/middleware"
	"wardrobe-ai/internal/wardrobe"
	wardrobeHTTP "wardrobe-ai/internal/wardrobe/delivery/http"
	wardrobeUC "wardrobe-ai/internal/wardrobe/usecase"
)

// setupWardrobeDomain initializes the wardrobe domain and registers its
// routes. The usecase is returned so the derived domains (insights,
// suggestions) can read through its snapshot.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(path, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupWardrobeDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (wardrobe.UseCase, error) {
	// 1. Repository is injected: it owns the database handle.

	// 2. UseCase
	uc := wardrobeUC.New(srv.l, srv.wardrobeRepo)

	// 3. HTTP Handler
	h := wardrobeHTTP.New(srv.l, uc, srv.vision)

	// 4. Routes: registers /api/v1/wardrobe/...
	wardrobeHTTP.RegisterRoutes(api.Group("/wardrobe"), h, mw)

	srv.l.Infof(ctx, "Wardrobe domain registered")
	return uc, nil
}
