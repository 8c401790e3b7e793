package http

import (
	"github.com/gin-gonic/gin"

	"wardrobe-ai/internal/suggest"
	"wardrobe-ai/pkg/response"
)

// Create godoc
// @Summary     Start a suggestion session
// @Description Creates a session and generates ranked outfit suggestions for the given mood and weather. An empty wardrobe yields the empty_wardrobe state, not an error.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Mood and optional weather"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/suggestions [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(session))
}

// Get godoc
// @Summary     Get session state
// @Tags        Suggestions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/suggestions/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(session))
}

// Regenerate godoc
// @Summary     Regenerate suggestions
// @Description Reruns the strategy for an existing session. Worn sessions are terminal and reject regeneration.
// @Tags        Suggestions
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Invalid state"
// @Router      /api/v1/suggestions/{id}/regenerate [POST]
func (h *handler) Regenerate(c *gin.Context) {
	ctx := c.Request.Context()

	session, err := h.uc.Regenerate(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(session))
}

// Wear godoc
// @Summary     Wear a suggested outfit
// @Description Commits the chosen suggestion to the wear ledger and closes the session.
// @Tags        Suggestions
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body wearReq true "Chosen suggestion"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Invalid state"
// @Router      /api/v1/suggestions/{id}/wear [POST]
func (h *handler) Wear(c *gin.Context) {
	ctx := c.Request.Context()

	var req wearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	session, err := h.uc.Wear(ctx, suggest.WearInput{
		SessionID:    c.Param("id"),
		SuggestionID: req.SuggestionID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Wear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(session))
}
