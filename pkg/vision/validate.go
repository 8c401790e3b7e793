package vision

import (
	"regexp"
	"strings"

	"wardrobe-ai/internal/model"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateAttributes maps untrusted model output into the typed attribute
// shape, defaulting each invalid field explicitly. The second return reports
// whether any field needed defaulting.
func validateAttributes(raw rawAttributes) (model.ClothingAttributes, bool) {
	usedFallback := false

	category := model.Category(strings.ToLower(strings.TrimSpace(raw.Category)))
	if !category.Valid() {
		category = model.CategoryTops
		usedFallback = true
	}

	subcategory := strings.TrimSpace(raw.Subcategory)
	if subcategory == "" {
		subcategory = "Clothing Item"
		usedFallback = true
	}

	color := strings.TrimSpace(raw.Color)
	if color == "" {
		color = "Unknown"
		usedFallback = true
	}

	colorHex := strings.TrimSpace(raw.ColorHex)
	if !hexColorRe.MatchString(colorHex) {
		colorHex = model.DefaultColorHex
		usedFallback = true
	}

	pattern := strings.TrimSpace(raw.Pattern)
	if pattern == "" {
		pattern = "Solid"
	}

	var seasons []model.Season
	for _, s := range raw.Season {
		season := model.Season(strings.ToLower(strings.TrimSpace(s)))
		if season.Valid() {
			seasons = append(seasons, season)
		}
	}
	if len(seasons) == 0 {
		// Season must never be empty; assume all-year wear.
		seasons = append(seasons, model.Seasons...)
		usedFallback = true
	}

	var tags []string
	for _, t := range raw.AITags {
		if tag := strings.TrimSpace(t); tag != "" {
			tags = append(tags, tag)
		}
	}

	return model.ClothingAttributes{
		Category:    category,
		Subcategory: subcategory,
		Color:       color,
		ColorHex:    colorHex,
		Pattern:     pattern,
		Season:      seasons,
		AITags:      tags,
	}, usedFallback
}

// fallbackAttributes is the default garment description used when the model
// response cannot be parsed at all.
func fallbackAttributes() model.ClothingAttributes {
	return model.ClothingAttributes{
		Category:    model.CategoryTops,
		Subcategory: "Casual T-Shirt",
		Color:       "Navy Blue",
		ColorHex:    "#1a1a2e",
		Pattern:     "Solid",
		Season:      []model.Season{model.SeasonSpring, model.SeasonSummer},
		AITags:      []string{"comfortable", "casual", "cotton", "basic"},
	}
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
