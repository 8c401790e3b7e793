package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-ai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.Auth(), h.Create)
	rg.GET("/:id", mw.Auth(), h.Get)
	rg.POST("/:id/regenerate", mw.Auth(), h.Regenerate)
	rg.POST("/:id/wear", mw.Auth(), h.Wear)
}
