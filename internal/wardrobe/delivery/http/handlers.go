package http

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"wardrobe-ai/pkg/response"
)

// Create godoc
// @Summary     Add a clothing item
// @Description Adds a new item to the wardrobe, typically with attributes from a prior analyze call.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item attributes"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wardrobe/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.uc.AddItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(item))
}

// Analyze godoc
// @Summary     Analyze a clothing photo
// @Description Runs AI image analysis and returns draft item attributes. Degrades to defaults when the model output is unusable.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Base64 image"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Analysis unavailable"
// @Router      /api/v1/wardrobe/items/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if h.vision == nil {
		response.Error(c, errAnalysisUnavailable)
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.vision.AnalyzeImage(ctx, image, req.MimeType)
	if err != nil {
		h.l.Errorf(ctx, "vision.AnalyzeImage: %v", err)
		response.Error(c, errAnalysisUnavailable)
		return
	}

	response.OK(c, analyzeResp{Attributes: result.Attributes, Fallback: result.Fallback})
}

// List godoc
// @Summary     List clothing items
// @Description Returns wardrobe items with optional category/season/search filters and sorting.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category"
// @Param       season   query string false "Filter by season"
// @Param       search   query string false "Substring search over subcategory/color/tags"
// @Param       sort     query string false "recent|oldest|mostWorn|leastWorn"
// @Param       limit    query int    false "Page size (0 = all)"
// @Param       offset   query int    false "Page offset"
// @Success     200 {object} listResp
// @Router      /api/v1/wardrobe/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListItems(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Tags        Wardrobe
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/wardrobe/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Partial update; omitted fields keep their values. Unknown ids are a no-op.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wardrobe/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.UpdateItem(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete an item
// @Description Removes the item. Historical wear records keep their references.
// @Tags        Wardrobe
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/wardrobe/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteItem(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AdjustWear godoc
// @Summary     Adjust the wear counter
// @Description Manual ±1 adjustment, floor-clamped at zero.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Item ID"
// @Param       body body adjustWearReq true "Delta"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wardrobe/items/{id}/wear [POST]
func (h *handler) AdjustWear(c *gin.Context) {
	ctx := c.Request.Context()

	var req adjustWearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.AdjustWear(ctx, c.Param("id"), req.Delta); err != nil {
		h.l.Errorf(ctx, "uc.AdjustWear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ToggleBookmark godoc
// @Summary     Toggle an item bookmark
// @Tags        Wardrobe
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/wardrobe/items/{id}/bookmark [POST]
func (h *handler) ToggleBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ToggleBookmark(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ToggleBookmark: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ListBookmarks godoc
// @Summary     List bookmarked item ids
// @Tags        Wardrobe
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/wardrobe/bookmarks [GET]
func (h *handler) ListBookmarks(c *gin.Context) {
	ctx := c.Request.Context()

	ids, err := h.uc.ListBookmarks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBookmarks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, gin.H{"bookmarks": ids})
}

// LogWear godoc
// @Summary     Log an outfit wear
// @Description Records the outfit and bumps wear counters for every referenced item that exists, atomically.
// @Tags        Wardrobe
// @Accept      json
// @Produce     json
// @Param       body body logWearReq true "Outfit"
// @Success     200 {object} wearRecordResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/wardrobe/wears [POST]
func (h *handler) LogWear(c *gin.Context) {
	ctx := c.Request.Context()

	var req logWearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	record, err := h.uc.LogOutfitWear(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LogOutfitWear: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newWearRecordResp(record))
}

// ListWears godoc
// @Summary     List wear history
// @Tags        Wardrobe
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/wardrobe/wears [GET]
func (h *handler) ListWears(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.uc.ListWearRecords(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWearRecords: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	resp := make([]wearRecordResp, len(records))
	for i, record := range records {
		resp[i] = newWearRecordResp(record)
	}
	response.OK(c, gin.H{"records": resp})
}

// SeedDemo godoc
// @Summary     Seed demo data
// @Description Replaces the wardrobe with the demo dataset and a mock wear history.
// @Tags        Wardrobe
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/wardrobe/demo [POST]
func (h *handler) SeedDemo(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.SeedDemoData(ctx); err != nil {
		h.l.Errorf(ctx, "uc.SeedDemoData: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
