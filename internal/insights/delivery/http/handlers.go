package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-ai/pkg/response"
)

// Overview godoc
// @Summary     Wardrobe analytics overview
// @Description Returns color aggregates, most/least worn items, behavioral nudges and the weekly wear pattern, derived live from the current wardrobe state.
// @Tags        Insights
// @Produce     json
// @Success     200 {object} insights.Overview
// @Router      /api/v1/insights [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	overview, err := h.uc.Overview(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, overview)
}

// Timeline godoc
// @Summary     Weekly outfit timeline
// @Description Returns the current week (Monday start) with the distinct items worn each day.
// @Tags        Insights
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/insights/timeline [GET]
func (h *handler) Timeline(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.uc.Timeline(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Timeline: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"days": days})
}
