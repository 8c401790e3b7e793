package usecase

import (
	"context"
	"fmt"
	"time"

	"wardrobe-ai/internal/model"
)

// SeedDemoData replaces the wardrobe with a diverse demo set plus a mock
// wear history for the last five days.
func (uc *implUseCase) SeedDemoData(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.nowFunc()
	items := demoItems(now)

	// One outfit per day: tee + jeans + sneakers, alternating weather.
	records := make([]model.WearRecord, 0, 5)
	for i := 0; i < 5; i++ {
		date := now.AddDate(0, 0, -(i + 1))
		condition := "Sunny"
		if i%2 != 0 {
			condition = "Cloudy"
		}
		records = append(records, model.WearRecord{
			ID:          fmt.Sprintf("hist-%d", i),
			Date:        date,
			OutfitItems: []string{items[0].ID, items[1].ID, items[3].ID},
			Mood:        "minimalist",
			Weather: model.WeatherSnapshot{
				Temperature: float64(20 + i),
				FeelsLike:   float64(21 + i),
				Condition:   condition,
				Humidity:    50,
				WindSpeed:   10,
				Location:    "Demo City",
			},
		})
	}

	uc.items = items
	uc.records = records

	uc.persistItems(ctx)
	uc.persistRecords(ctx)

	uc.l.Infof(ctx, "wardrobe: seeded %d demo items and %d wear records", len(items), len(records))
	return nil
}

func demoItems(now time.Time) []model.ClothingItem {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	wornAgo := func(d int) *time.Time {
		t := now.AddDate(0, 0, -d)
		return &t
	}

	return []model.ClothingItem{
		{
			ID:            "demo-1",
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryTops,
			Subcategory:   "White Cotton Tee",
			Color:         "White",
			ColorHex:      "#FFFFFF",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSpring, model.SeasonSummer},
			WearFrequency: 15,
			LastWorn:      wornAgo(2),
			DateAdded:     daysAgo(30),
			AITags:        []string{"basic", "casual", "essential"},
			UserNotes:     "Staple piece",
		},
		{
			ID:            "demo-2",
			ImageURL:      "https://images.unsplash.com/photo-1542272617-08f083157f5d?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryBottoms,
			Subcategory:   "Vintage Levis 501",
			Color:         "Blue",
			ColorHex:      "#3b82f6",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSpring, model.SeasonFall, model.SeasonWinter},
			WearFrequency: 22,
			LastWorn:      wornAgo(1),
			DateAdded:     daysAgo(45),
			AITags:        []string{"denim", "vintage", "casual"},
		},
		{
			ID:            "demo-3",
			ImageURL:      "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryOuterwear,
			Subcategory:   "Classic Trench",
			Color:         "Beige",
			ColorHex:      "#d2b48c",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSpring, model.SeasonFall},
			WearFrequency: 8,
			LastWorn:      wornAgo(5),
			DateAdded:     daysAgo(60),
			AITags:        []string{"chic", "workwear", "layering"},
		},
		{
			ID:            "demo-4",
			ImageURL:      "https://images.unsplash.com/photo-1549298916-b41d501d3772?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryShoes,
			Subcategory:   "White Sneakers",
			Color:         "White",
			ColorHex:      "#f3f4f6",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSpring, model.SeasonSummer, model.SeasonFall, model.SeasonWinter},
			WearFrequency: 45,
			LastWorn:      wornAgo(0),
			DateAdded:     daysAgo(90),
			AITags:        []string{"sporty", "comfortable", "daily"},
		},
		{
			ID:            "demo-5",
			ImageURL:      "https://images.unsplash.com/photo-1620799140408-ed5341cd2431?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryDresses,
			Subcategory:   "Black Slip Dress",
			Color:         "Black",
			ColorHex:      "#000000",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSummer, model.SeasonSpring},
			WearFrequency: 5,
			LastWorn:      wornAgo(14),
			DateAdded:     daysAgo(20),
			AITags:        []string{"evening", "elegant", "minimal"},
		},
		{
			ID:            "demo-6",
			ImageURL:      "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryTops,
			Subcategory:   "Striped Oxford Shirt",
			Color:         "Blue",
			ColorHex:      "#60a5fa",
			Pattern:       "Striped",
			Season:        []model.Season{model.SeasonSpring, model.SeasonFall},
			WearFrequency: 10,
			LastWorn:      wornAgo(3),
			DateAdded:     daysAgo(40),
			AITags:        []string{"preppy", "work", "collared"},
		},
		{
			ID:            "demo-7",
			ImageURL:      "https://images.unsplash.com/photo-1551028919-ac66c5f8b955?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryBottoms,
			Subcategory:   "Black Trousers",
			Color:         "Black",
			ColorHex:      "#1f2937",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonFall, model.SeasonWinter},
			WearFrequency: 18,
			LastWorn:      wornAgo(4),
			DateAdded:     daysAgo(50),
			AITags:        []string{"formal", "office", "tailored"},
		},
		{
			ID:            "demo-8",
			ImageURL:      "https://images.unsplash.com/photo-1556906781-9a412961d28c?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryShoes,
			Subcategory:   "Chelsea Boots",
			Color:         "Brown",
			ColorHex:      "#78350f",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonFall, model.SeasonWinter},
			WearFrequency: 12,
			LastWorn:      wornAgo(6),
			DateAdded:     daysAgo(70),
			AITags:        []string{"leather", "boots", "autumn"},
		},
		{
			ID:            "demo-9",
			ImageURL:      "https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryTops,
			Subcategory:   "Chunky Knit Sweater",
			Color:         "Cream",
			ColorHex:      "#fef3c7",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonWinter, model.SeasonFall},
			WearFrequency: 7,
			LastWorn:      wornAgo(8),
			DateAdded:     daysAgo(25),
			AITags:        []string{"cozy", "warm", "knitwear"},
		},
		{
			ID:            "demo-10",
			ImageURL:      "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryAccessories,
			Subcategory:   "Leather Tote Bag",
			Color:         "Tan",
			ColorHex:      "#d97706",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSpring, model.SeasonSummer, model.SeasonFall, model.SeasonWinter},
			WearFrequency: 40,
			LastWorn:      wornAgo(0),
			DateAdded:     daysAgo(100),
			AITags:        []string{"bag", "accessory", "daily"},
		},
		{
			ID:            "demo-11",
			ImageURL:      "https://images.unsplash.com/photo-1617137968427-85924c809a10?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryOuterwear,
			Subcategory:   "Denim Jacket",
			Color:         "Blue",
			ColorHex:      "#2563eb",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonSpring, model.SeasonFall},
			WearFrequency: 14,
			LastWorn:      wornAgo(10),
			DateAdded:     daysAgo(80),
			AITags:        []string{"casual", "layering", "denim"},
		},
		{
			ID:            "demo-12",
			ImageURL:      "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?auto=format&fit=crop&q=80&w=500",
			Category:      model.CategoryTops,
			Subcategory:   "Silk Blouse",
			Color:         "Red",
			ColorHex:      "#dc2626",
			Pattern:       "Solid",
			Season:        []model.Season{model.SeasonFall, model.SeasonWinter},
			WearFrequency: 3,
			LastWorn:      wornAgo(25),
			DateAdded:     daysAgo(40),
			AITags:        []string{"formal", "evening", "statement"},
		},
	}
}
