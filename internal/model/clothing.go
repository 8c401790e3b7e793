package model

import "time"

// Category is the closed set of clothing categories.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryOuterwear   Category = "outerwear"
	CategoryDresses     Category = "dresses"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
	CategoryBags        Category = "bags"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryTops,
	CategoryBottoms,
	CategoryOuterwear,
	CategoryDresses,
	CategoryShoes,
	CategoryAccessories,
	CategoryBags,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Season marks the part of the year an item suits. An item carries one or more.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists every valid season.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Valid reports whether s is one of the known seasons.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return true
	}
	return false
}

// DefaultColorHex is the join key used when an item has no detected color.
const DefaultColorHex = "#000000"

// ClothingItem is a single garment in the wardrobe.
type ClothingItem struct {
	ID            string     `json:"id"`
	ImageURL      string     `json:"imageUrl"`
	Category      Category   `json:"category"`
	Subcategory   string     `json:"subcategory"`
	Color         string     `json:"color"`
	ColorHex      string     `json:"colorHex"`
	Pattern       string     `json:"pattern"`
	Season        []Season   `json:"season"`
	WearFrequency int        `json:"wearFrequency"`
	LastWorn      *time.Time `json:"lastWorn"`
	DateAdded     time.Time  `json:"dateAdded"`
	AITags        []string   `json:"aiTags"`
	UserNotes     string     `json:"userNotes,omitempty"`
}

// WornIn reports whether the item is suitable for the given season.
func (i ClothingItem) WornIn(s Season) bool {
	for _, season := range i.Season {
		if season == s {
			return true
		}
	}
	return false
}

// ClothingAttributes is the untrusted-boundary shape produced by image
// analysis, before an item id and timestamps are assigned.
type ClothingAttributes struct {
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory"`
	Color       string   `json:"color"`
	ColorHex    string   `json:"colorHex"`
	Pattern     string   `json:"pattern"`
	Season      []Season `json:"season"`
	AITags      []string `json:"aiTags"`
}
