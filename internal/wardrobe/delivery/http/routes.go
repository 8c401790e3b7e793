package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-ai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.Auth(), h.Create)
		items.POST("/analyze", mw.Auth(), h.Analyze)
		items.GET("", mw.Auth(), h.List)
		items.GET("/:id", mw.Auth(), h.Detail)
		items.PUT("/:id", mw.Auth(), h.Update)
		items.DELETE("/:id", mw.Auth(), h.Delete)
		items.POST("/:id/wear", mw.Auth(), h.AdjustWear)
		items.POST("/:id/bookmark", mw.Auth(), h.ToggleBookmark)
	}

	rg.GET("/bookmarks", mw.Auth(), h.ListBookmarks)

	wears := rg.Group("/wears")
	{
		wears.POST("", mw.Auth(), h.LogWear)
		wears.GET("", mw.Auth(), h.ListWears)
	}

	rg.POST("/demo", mw.Auth(), h.SeedDemo)
}
