package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wardrobe-ai/internal/model"
)

func TestValidateAttributes(t *testing.T) {
	t.Run("Clean Input Passes Through", func(t *testing.T) {
		attrs, usedFallback := validateAttributes(rawAttributes{
			Category:    "tops",
			Subcategory: "Oxford Shirt",
			Color:       "White",
			ColorHex:    "#F5F5F5",
			Pattern:     "Solid",
			Season:      []string{"spring", "fall"},
			AITags:      []string{"formal", "cotton"},
		})
		assert.False(t, usedFallback)
		assert.Equal(t, model.CategoryTops, attrs.Category)
		assert.Equal(t, "Oxford Shirt", attrs.Subcategory)
		assert.Equal(t, []model.Season{model.SeasonSpring, model.SeasonFall}, attrs.Season)
	})

	t.Run("Category Normalized And Defaulted", func(t *testing.T) {
		attrs, usedFallback := validateAttributes(rawAttributes{Category: " TOPS "})
		assert.Equal(t, model.CategoryTops, attrs.Category)

		attrs, usedFallback = validateAttributes(rawAttributes{Category: "spacesuit"})
		assert.True(t, usedFallback)
		assert.Equal(t, model.CategoryTops, attrs.Category)
	})

	t.Run("Invalid Hex Defaults", func(t *testing.T) {
		attrs, usedFallback := validateAttributes(rawAttributes{ColorHex: "blue"})
		assert.True(t, usedFallback)
		assert.Equal(t, model.DefaultColorHex, attrs.ColorHex)

		attrs, _ = validateAttributes(rawAttributes{ColorHex: "#ABCdef", Category: "tops", Subcategory: "x", Color: "y", Season: []string{"summer"}})
		assert.Equal(t, "#ABCdef", attrs.ColorHex)
	})

	t.Run("Empty Seasons Become All Year", func(t *testing.T) {
		attrs, usedFallback := validateAttributes(rawAttributes{Season: []string{"monsoon"}})
		assert.True(t, usedFallback)
		assert.Len(t, attrs.Season, 4)
	})

	t.Run("Blank Tags Dropped", func(t *testing.T) {
		attrs, _ := validateAttributes(rawAttributes{AITags: []string{" ", "denim", ""}})
		assert.Equal(t, []string{"denim"}, attrs.AITags)
	})
}

func TestSanitizeJSONResponse(t *testing.T) {
	t.Run("Code Fence Stripped", func(t *testing.T) {
		in := "```json\n{\"category\":\"tops\"}\n```"
		assert.Equal(t, `{"category":"tops"}`, sanitizeJSONResponse(in))
	})

	t.Run("Plain Fence Stripped", func(t *testing.T) {
		in := "```\n{\"a\":1}\n```"
		assert.Equal(t, `{"a":1}`, sanitizeJSONResponse(in))
	})

	t.Run("Surrounding Prose Trimmed", func(t *testing.T) {
		in := `Here is the analysis: {"category":"tops"} Hope that helps!`
		assert.Equal(t, `{"category":"tops"}`, sanitizeJSONResponse(in))
	})

	t.Run("No JSON Returns Input", func(t *testing.T) {
		assert.Equal(t, "nothing here", sanitizeJSONResponse("nothing here"))
	})
}
