package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
)

var testNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC) // a Monday

func TestAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Category", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		_, err := uc.AddItem(ctx, wardrobe.AddItemInput{Category: "hats"})
		if !errors.Is(err, wardrobe.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		item, err := uc.AddItem(ctx, wardrobe.AddItemInput{Category: model.CategoryTops})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ColorHex != model.DefaultColorHex {
			t.Errorf("expected default color hex, got %s", item.ColorHex)
		}
		if len(item.Season) != len(model.Seasons) {
			t.Errorf("expected all seasons by default, got %v", item.Season)
		}
		if item.WearFrequency != 0 || item.LastWorn != nil {
			t.Errorf("new item must start unworn")
		}
		if !item.DateAdded.Equal(testNow) {
			t.Errorf("expected injected clock timestamp, got %v", item.DateAdded)
		}
	})

	t.Run("Invalid Seasons Filtered", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		item, err := uc.AddItem(ctx, wardrobe.AddItemInput{
			Category: model.CategoryTops,
			Season:   []model.Season{model.SeasonSummer, "monsoon"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(item.Season) != 1 || item.Season[0] != model.SeasonSummer {
			t.Errorf("expected only the valid season kept, got %v", item.Season)
		}
	})

	t.Run("Head Insertion", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		first, _ := uc.AddItem(ctx, wardrobe.AddItemInput{Category: model.CategoryTops})
		second, _ := uc.AddItem(ctx, wardrobe.AddItemInput{Category: model.CategoryBottoms})

		items, _ := uc.Snapshot(ctx)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].ID != second.ID || items[1].ID != first.ID {
			t.Errorf("expected newest item first")
		}
	})

	t.Run("Persistence Failure Recorded Not Returned", func(t *testing.T) {
		repo := &mockRepository{saveErr: errors.New("disk full")}
		uc := newTestUseCase(repo, testNow)
		_, err := uc.AddItem(ctx, wardrobe.AddItemInput{Category: model.CategoryTops})
		if err != nil {
			t.Fatalf("save failure must not fail the mutation: %v", err)
		}
		if uc.LastError() == nil {
			t.Errorf("expected LastError to report the save failure")
		}

		items, _ := uc.Snapshot(ctx)
		if len(items) != 1 {
			t.Errorf("memory must stay authoritative, got %d items", len(items))
		}
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown ID Is NoOp", func(t *testing.T) {
		repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 0)}}
		uc := newTestUseCase(repo, testNow)
		if err := uc.UpdateItem(ctx, wardrobe.UpdateItemInput{ID: "ghost", Color: "Red"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, _ := uc.Detail(ctx, "a")
		if out.Item.Color != "Blue" {
			t.Errorf("no item should have changed")
		}
	})

	t.Run("Partial Merge Keeps Omitted Fields", func(t *testing.T) {
		repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 3)}}
		uc := newTestUseCase(repo, testNow)
		err := uc.UpdateItem(ctx, wardrobe.UpdateItemInput{ID: "a", Color: "Red", ColorHex: "#FF0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, _ := uc.Detail(ctx, "a")
		if out.Item.Color != "Red" || out.Item.ColorHex != "#FF0000" {
			t.Errorf("updated fields not applied: %+v", out.Item)
		}
		if out.Item.Subcategory != "T-Shirt" || out.Item.WearFrequency != 3 {
			t.Errorf("omitted fields must be untouched: %+v", out.Item)
		}
	})

	t.Run("Empty Pointer Clears Optional Fields", func(t *testing.T) {
		seeded := testItem("a", model.CategoryTops, 0)
		seeded.Pattern = "Striped"
		seeded.UserNotes = "gift from mom"
		repo := &mockRepository{items: []model.ClothingItem{seeded}}
		uc := newTestUseCase(repo, testNow)

		empty := ""
		err := uc.UpdateItem(ctx, wardrobe.UpdateItemInput{ID: "a", Pattern: &empty, UserNotes: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, _ := uc.Detail(ctx, "a")
		if out.Item.Pattern != "" || out.Item.UserNotes != "" {
			t.Errorf("explicit empty values must clear the fields: %+v", out.Item)
		}
		if out.Item.Subcategory != "T-Shirt" {
			t.Errorf("nil fields must stay untouched: %+v", out.Item)
		}
	})

	t.Run("Nil Pointer Keeps Optional Fields", func(t *testing.T) {
		seeded := testItem("a", model.CategoryTops, 0)
		seeded.UserNotes = "dry clean only"
		repo := &mockRepository{items: []model.ClothingItem{seeded}}
		uc := newTestUseCase(repo, testNow)

		if err := uc.UpdateItem(ctx, wardrobe.UpdateItemInput{ID: "a", Color: "Red"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, _ := uc.Detail(ctx, "a")
		if out.Item.UserNotes != "dry clean only" {
			t.Errorf("omitted pointer fields must keep their values: %+v", out.Item)
		}
	})
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Item Keeps History", func(t *testing.T) {
		repo := &mockRepository{
			items:   []model.ClothingItem{testItem("a", model.CategoryTops, 1)},
			records: []model.WearRecord{{ID: "r1", OutfitItems: []string{"a"}}},
		}
		uc := newTestUseCase(repo, testNow)
		if err := uc.DeleteItem(ctx, "a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items, records := uc.Snapshot(ctx)
		if len(items) != 0 {
			t.Errorf("expected item removed")
		}
		if len(records) != 1 || records[0].OutfitItems[0] != "a" {
			t.Errorf("wear history must keep the dangling reference")
		}
	})

	t.Run("Unknown ID Is NoOp", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		if err := uc.DeleteItem(ctx, "ghost"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 0)}}
	uc := newTestUseCase(repo, testNow)

	t.Run("Found", func(t *testing.T) {
		out, err := uc.Detail(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID != "a" {
			t.Errorf("wrong item returned")
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := uc.Detail(ctx, "ghost")
		if !errors.Is(err, wardrobe.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestAdjustWear(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Delta", func(t *testing.T) {
		uc := newTestUseCase(&mockRepository{}, testNow)
		if err := uc.AdjustWear(ctx, "a", 2); !errors.Is(err, wardrobe.ErrInvalidPayload) {
			t.Errorf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("Increment And Decrement", func(t *testing.T) {
		repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 1)}}
		uc := newTestUseCase(repo, testNow)

		_ = uc.AdjustWear(ctx, "a", 1)
		out, _ := uc.Detail(ctx, "a")
		if out.Item.WearFrequency != 2 {
			t.Errorf("expected 2 after increment, got %d", out.Item.WearFrequency)
		}

		_ = uc.AdjustWear(ctx, "a", -1)
		out, _ = uc.Detail(ctx, "a")
		if out.Item.WearFrequency != 1 {
			t.Errorf("expected 1 after decrement, got %d", out.Item.WearFrequency)
		}
	})

	t.Run("Floor Clamped At Zero", func(t *testing.T) {
		repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 0)}}
		uc := newTestUseCase(repo, testNow)

		if err := uc.AdjustWear(ctx, "a", -1); err != nil {
			t.Fatalf("decrement at floor must be a silent no-op: %v", err)
		}
		out, _ := uc.Detail(ctx, "a")
		if out.Item.WearFrequency != 0 {
			t.Errorf("counter must never go negative, got %d", out.Item.WearFrequency)
		}
	})
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{items: []model.ClothingItem{testItem("a", model.CategoryTops, 0)}}
	uc := newTestUseCase(repo, testNow)

	items, _ := uc.Snapshot(ctx)
	items[0].Color = "Mutated"

	out, _ := uc.Detail(ctx, "a")
	if out.Item.Color != "Blue" {
		t.Errorf("snapshot mutation leaked into owned state")
	}
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	repo := &mockRepository{loadItemsErr: errors.New("corrupt")}
	uc := newTestUseCase(repo, testNow)

	items, _ := uc.Snapshot(context.Background())
	if len(items) != 0 {
		t.Errorf("expected empty start after load failure, got %d items", len(items))
	}
}
