package wardrobe

import (
	"wardrobe-ai/internal/model"
)

// Sort orders for ListItems.
type Sort string

const (
	SortRecent    Sort = "recent"
	SortOldest    Sort = "oldest"
	SortMostWorn  Sort = "mostWorn"
	SortLeastWorn Sort = "leastWorn"
)

// --- UseCase Inputs ---

type AddItemInput struct {
	ImageURL    string
	Category    model.Category
	Subcategory string
	Color       string
	ColorHex    string
	Pattern     string
	Season      []model.Season
	AITags      []string
	UserNotes   string
}

// UpdateItemInput carries a partial update. Identity fields (Category,
// Subcategory, Color, ColorHex, Season) merge only when set: they can change
// but never empty out. The optional fields are pointers so they can be
// cleared: nil keeps the current value, a pointer to "" erases it.
type UpdateItemInput struct {
	ID          string
	ImageURL    *string
	Category    model.Category
	Subcategory string
	Color       string
	ColorHex    string
	Pattern     *string
	Season      []model.Season
	AITags      []string
	UserNotes   *string
}

// ListItemsInput filters then sorts. Filter applies before sort. A zero
// Limit returns everything.
type ListItemsInput struct {
	Category model.Category
	Season   model.Season
	Search   string
	Sort     Sort
	Limit    int
	Offset   int
}

type LogWearInput struct {
	ItemIDs []string
	MoodID  string
	Weather model.WeatherSnapshot
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items  []model.ClothingItem
	Total  int
	Limit  int
	Offset int
}

type DetailItemOutput struct {
	Item model.ClothingItem
}
