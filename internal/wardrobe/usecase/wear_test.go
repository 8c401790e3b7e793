package usecase

import (
	"context"
	"errors"
	"testing"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
)

func TestLogOutfitWear(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Outfit", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		_, err := uc.LogOutfitWear(ctx, wardrobe.LogWearInput{})
		if !errors.Is(err, wardrobe.ErrEmptyOutfit) {
			t.Errorf("expected ErrEmptyOutfit, got %v", err)
		}
	})

	t.Run("Counters And Shared Timestamp", func(t *testing.T) {
		repo := &mockRepository{items: []model.ClothingItem{
			testItem("a", model.CategoryTops, 2),
			testItem("b", model.CategoryBottoms, 0),
			testItem("c", model.CategoryShoes, 5),
		}}
		uc := newTestUseCase(repo, testNow)

		record, err := uc.LogOutfitWear(ctx, wardrobe.LogWearInput{
			ItemIDs: []string{"a", "b"},
			MoodID:  "casual",
			Weather: model.WeatherSnapshot{Condition: "Sunny", Temperature: 22},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !record.Date.Equal(testNow) {
			t.Errorf("record must carry the event timestamp")
		}

		items, _ := uc.Snapshot(ctx)
		byID := make(map[string]model.ClothingItem)
		for _, item := range items {
			byID[item.ID] = item
		}
		if byID["a"].WearFrequency != 3 || byID["b"].WearFrequency != 1 {
			t.Errorf("worn items must get +1: a=%d b=%d", byID["a"].WearFrequency, byID["b"].WearFrequency)
		}
		if byID["c"].WearFrequency != 5 {
			t.Errorf("unworn item must be untouched, got %d", byID["c"].WearFrequency)
		}
		if byID["a"].LastWorn == nil || !byID["a"].LastWorn.Equal(testNow) {
			t.Errorf("lastWorn must be the shared event timestamp")
		}
		if byID["b"].LastWorn == nil || !byID["a"].LastWorn.Equal(*byID["b"].LastWorn) {
			t.Errorf("both items must share one timestamp")
		}
	})

	t.Run("Dangling IDs Kept In Record", func(t *testing.T) {
		repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 0)}}
		uc := newTestUseCase(repo, testNow)

		record, err := uc.LogOutfitWear(ctx, wardrobe.LogWearInput{ItemIDs: []string{"a", "deleted"}})
		if err != nil {
			t.Fatalf("unknown ids must not fail the wear: %v", err)
		}
		if len(record.OutfitItems) != 2 {
			t.Errorf("record must keep all referenced ids, got %v", record.OutfitItems)
		}

		items, _ := uc.Snapshot(ctx)
		if items[0].WearFrequency != 1 {
			t.Errorf("existing item still gets its increment")
		}
	})

	t.Run("Record Head Insertion", func(t *testing.T) {
		repo := &mockRepository{
			items:   []model.ClothingItem{testItem("a", model.CategoryTops, 0)},
			records: []model.WearRecord{{ID: "old"}},
		}
		uc := newTestUseCase(repo, testNow)

		record, _ := uc.LogOutfitWear(ctx, wardrobe.LogWearInput{ItemIDs: []string{"a"}})

		records, _ := uc.ListWearRecords(ctx)
		if len(records) != 2 || records[0].ID != record.ID {
			t.Errorf("newest record must come first")
		}
	})
}
