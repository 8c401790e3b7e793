package http

import (
	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
	"wardrobe-ai/pkg/response"
)

// --- Request DTOs ---

type seasonList []model.Season

func (s seasonList) toModel() []model.Season {
	return []model.Season(s)
}

type createReq struct {
	ImageURL    string         `json:"image_url"`
	Category    model.Category `json:"category"    binding:"required"`
	Subcategory string         `json:"subcategory" binding:"required,min=1,max=255"`
	Color       string         `json:"color"       binding:"max=64"`
	ColorHex    string         `json:"color_hex"   binding:"omitempty,hexcolor"`
	Pattern     string         `json:"pattern"     binding:"max=64"`
	Season      seasonList     `json:"season"`
	AITags      []string       `json:"ai_tags"`
	UserNotes   string         `json:"user_notes"  binding:"max=1000"`
}

func (r createReq) toInput() wardrobe.AddItemInput {
	return wardrobe.AddItemInput{
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Color:       r.Color,
		ColorHex:    r.ColorHex,
		Pattern:     r.Pattern,
		Season:      r.Season.toModel(),
		AITags:      r.AITags,
		UserNotes:   r.UserNotes,
	}
}

// updateReq is a partial update: omitted pointer fields keep their stored
// values, an explicit empty string clears them.
type updateReq struct {
	ID          string         `json:"-"` // populated from URI param
	ImageURL    *string        `json:"image_url"`
	Category    model.Category `json:"category"`
	Subcategory string         `json:"subcategory" binding:"omitempty,min=1,max=255"`
	Color       string         `json:"color"       binding:"max=64"`
	ColorHex    string         `json:"color_hex"   binding:"omitempty,hexcolor"`
	Pattern     *string        `json:"pattern"     binding:"omitempty,max=64"`
	Season      seasonList     `json:"season"`
	AITags      []string       `json:"ai_tags"`
	UserNotes   *string        `json:"user_notes"  binding:"omitempty,max=1000"`
}

func (r updateReq) toInput() wardrobe.UpdateItemInput {
	return wardrobe.UpdateItemInput{
		ID:          r.ID,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Color:       r.Color,
		ColorHex:    r.ColorHex,
		Pattern:     r.Pattern,
		Season:      r.Season.toModel(),
		AITags:      r.AITags,
		UserNotes:   r.UserNotes,
	}
}

type listReq struct {
	Category string `form:"category"`
	Season   string `form:"season"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() wardrobe.ListItemsInput {
	limit := r.Limit
	if limit < 0 || limit > 500 {
		limit = 0
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return wardrobe.ListItemsInput{
		Category: model.Category(r.Category),
		Season:   model.Season(r.Season),
		Search:   r.Search,
		Sort:     wardrobe.Sort(r.Sort),
		Limit:    limit,
		Offset:   offset,
	}
}

type adjustWearReq struct {
	Delta int `json:"delta" binding:"required,oneof=1 -1"`
}

type logWearReq struct {
	ItemIDs []string              `json:"item_ids" binding:"required,min=1"`
	MoodID  string                `json:"mood_id"`
	Weather model.WeatherSnapshot `json:"weather"`
}

func (r logWearReq) toInput() wardrobe.LogWearInput {
	return wardrobe.LogWearInput{
		ItemIDs: r.ItemIDs,
		MoodID:  r.MoodID,
		Weather: r.Weather,
	}
}

type analyzeReq struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
	MimeType    string `json:"mime_type"`
}

// --- Response DTOs ---

type itemResp struct {
	ID            string             `json:"id"`
	ImageURL      string             `json:"image_url"`
	Category      model.Category     `json:"category"`
	Subcategory   string             `json:"subcategory"`
	Color         string             `json:"color"`
	ColorHex      string             `json:"color_hex"`
	Pattern       string             `json:"pattern"`
	Season        []model.Season     `json:"season"`
	WearFrequency int                `json:"wear_frequency"`
	LastWorn      *response.DateTime `json:"last_worn"`
	DateAdded     response.Date      `json:"date_added"`
	AITags        []string           `json:"ai_tags"`
	UserNotes     string             `json:"user_notes,omitempty"`
}

func newItemResp(item model.ClothingItem) itemResp {
	var lastWorn *response.DateTime
	if item.LastWorn != nil {
		worn := response.DateTime(*item.LastWorn)
		lastWorn = &worn
	}

	return itemResp{
		ID:            item.ID,
		ImageURL:      item.ImageURL,
		Category:      item.Category,
		Subcategory:   item.Subcategory,
		Color:         item.Color,
		ColorHex:      item.ColorHex,
		Pattern:       item.Pattern,
		Season:        item.Season,
		WearFrequency: item.WearFrequency,
		LastWorn:      lastWorn,
		DateAdded:     response.Date(item.DateAdded),
		AITags:        item.AITags,
		UserNotes:     item.UserNotes,
	}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out wardrobe.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type wearRecordResp struct {
	ID          string                `json:"id"`
	Date        response.DateTime     `json:"date"`
	OutfitItems []string              `json:"outfit_items"`
	Mood        string                `json:"mood"`
	Weather     model.WeatherSnapshot `json:"weather"`
}

func newWearRecordResp(record model.WearRecord) wearRecordResp {
	return wearRecordResp{
		ID:          record.ID,
		Date:        response.DateTime(record.Date),
		OutfitItems: record.OutfitItems,
		Mood:        record.Mood,
		Weather:     record.Weather,
	}
}

type analyzeResp struct {
	Attributes model.ClothingAttributes `json:"attributes"`
	Fallback   bool                     `json:"fallback"`
}
