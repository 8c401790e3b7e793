// Package moods holds the static catalog of fashion moods. Read-only data:
// the recommender and insights consume it, nothing mutates it.
package moods

import "wardrobe-ai/internal/model"

var catalog = []model.FashionMood{
	{
		ID:              "professional",
		Name:            "Professional",
		Description:     "Clean and polished for the office",
		ColorPalette:    []string{"#2D3A2D", "#3F4F37", "#F4F5F0"},
		PreviewImageURL: "https://images.unsplash.com/photo-1487222477894-8943e31ef7b2?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"work", "office", "formal"},
	},
	{
		ID:              "casual",
		Name:            "Casual",
		Description:     "Relaxed and comfortable everyday look",
		ColorPalette:    []string{"#6B7F5E", "#A8B89A", "#E8EBE4"},
		PreviewImageURL: "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"relax", "comfortable", "daily"},
	},
	{
		ID:              "sporty",
		Name:            "Sporty",
		Description:     "Active and energetic athleisure",
		ColorPalette:    []string{"#556849", "#8A9E78", "#D1D8C9"},
		PreviewImageURL: "https://images.unsplash.com/photo-1518310383802-640c2de311b2?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"active", "gym", "run"},
	},
	{
		ID:              "creative",
		Name:            "Creative",
		Description:     "Bold and expressive combinations",
		ColorPalette:    []string{"#3F4F37", "#6B7F5E", "#D1D8C9"},
		PreviewImageURL: "https://images.unsplash.com/photo-1500917293891-ef795e70e1f6?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"art", "bold", "color"},
	},
	{
		ID:              "minimalist",
		Name:            "Minimalist",
		Description:     "Sleek and understated elegance",
		ColorPalette:    []string{"#1A2419", "#2D3A2D", "#E8EBE4"},
		PreviewImageURL: "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"clean", "simple", "sleek"},
	},
	{
		ID:              "cozy",
		Name:            "Cozy",
		Description:     "Warm and layered comfort",
		ColorPalette:    []string{"#8A9E78", "#A8B89A", "#F4F5F0"},
		PreviewImageURL: "https://images.unsplash.com/photo-1520006403909-838d6b92c22e?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"winter", "autumn", "layer"},
	},
	{
		ID:              "elegant",
		Name:            "Elegant",
		Description:     "Sophisticated evening attire",
		ColorPalette:    []string{"#2D3A2D", "#556849", "#D1D8C9"},
		PreviewImageURL: "https://images.unsplash.com/photo-1539008835657-9e8e9680c956?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"night", "date", "formal"},
	},
	{
		ID:              "streetwear",
		Name:            "Streetwear",
		Description:     "Urban and trendy looks",
		ColorPalette:    []string{"#1A2419", "#3F4F37", "#A8B89A"},
		PreviewImageURL: "https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"city", "trend", "hype"},
	},
	{
		ID:              "romantic",
		Name:            "Romantic",
		Description:     "Soft and elegant date-night looks",
		ColorPalette:    []string{"#556849", "#A8B89A", "#F4F5F0"},
		PreviewImageURL: "https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80&w=500",
		Tags:            []string{"date", "evening", "soft", "romantic"},
	},
}

// All returns the full mood catalog.
func All() []model.FashionMood {
	out := make([]model.FashionMood, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a mood. The second return is false when the id is unknown.
func ByID(id string) (model.FashionMood, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return model.FashionMood{}, false
}

// Default returns the mood used when no selection was made.
func Default() model.FashionMood {
	return catalog[1] // casual
}
