package usecase

import (
	"context"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
)

// AddItem assigns a fresh id and creation timestamp and inserts at the head
// of the collection (most-recent-first is the default display order).
func (uc *implUseCase) AddItem(ctx context.Context, input wardrobe.AddItemInput) (model.ClothingItem, error) {
	if !input.Category.Valid() {
		return model.ClothingItem{}, wardrobe.ErrInvalidPayload
	}

	seasons := make([]model.Season, 0, len(input.Season))
	for _, s := range input.Season {
		if s.Valid() {
			seasons = append(seasons, s)
		}
	}
	if len(seasons) == 0 {
		// Season must never be empty; default to all-year wear.
		seasons = append(seasons, model.Seasons...)
	}

	colorHex := input.ColorHex
	if colorHex == "" {
		colorHex = model.DefaultColorHex
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	item := model.ClothingItem{
		ID:            uc.newID(),
		ImageURL:      input.ImageURL,
		Category:      input.Category,
		Subcategory:   input.Subcategory,
		Color:         input.Color,
		ColorHex:      colorHex,
		Pattern:       input.Pattern,
		Season:        seasons,
		WearFrequency: 0,
		LastWorn:      nil,
		DateAdded:     uc.nowFunc(),
		AITags:        input.AITags,
		UserNotes:     input.UserNotes,
	}

	uc.items = append([]model.ClothingItem{item}, uc.items...)
	uc.persistItems(ctx)

	return item, nil
}

// UpdateItem merges the provided fields into the matching item. Pointer
// fields clear the value when set to the empty string. An unknown id is a
// no-op, not an error.
func (uc *implUseCase) UpdateItem(ctx context.Context, input wardrobe.UpdateItemInput) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findIndex(input.ID)
	if idx < 0 {
		return nil
	}

	item := &uc.items[idx]
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.Category.Valid() {
		item.Category = input.Category
	}
	if input.Subcategory != "" {
		item.Subcategory = input.Subcategory
	}
	if input.Color != "" {
		item.Color = input.Color
	}
	if input.ColorHex != "" {
		item.ColorHex = input.ColorHex
	}
	if input.Pattern != nil {
		item.Pattern = *input.Pattern
	}
	if len(input.Season) > 0 {
		item.Season = input.Season
	}
	if input.AITags != nil {
		item.AITags = input.AITags
	}
	if input.UserNotes != nil {
		item.UserNotes = *input.UserNotes
	}

	uc.persistItems(ctx)
	return nil
}

// DeleteItem removes the item. Historical wear records keep their references;
// readers filter the dangling ids.
func (uc *implUseCase) DeleteItem(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findIndex(id)
	if idx < 0 {
		return nil
	}

	uc.items = append(uc.items[:idx], uc.items[idx+1:]...)
	uc.persistItems(ctx)
	return nil
}

// Detail retrieves a single item. Returns ErrItemNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, id string) (wardrobe.DetailItemOutput, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	idx := uc.findIndex(id)
	if idx < 0 {
		return wardrobe.DetailItemOutput{}, wardrobe.ErrItemNotFound
	}
	return wardrobe.DetailItemOutput{Item: uc.items[idx]}, nil
}

// AdjustWear applies a manual ±1 counter adjustment, floor-clamped at zero.
// Unknown ids and decrements at the floor are no-ops.
func (uc *implUseCase) AdjustWear(ctx context.Context, id string, delta int) error {
	if delta != 1 && delta != -1 {
		return wardrobe.ErrInvalidPayload
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := uc.findIndex(id)
	if idx < 0 {
		return nil
	}

	next := uc.items[idx].WearFrequency + delta
	if next < 0 {
		return nil
	}
	uc.items[idx].WearFrequency = next

	uc.persistItems(ctx)
	return nil
}

// Snapshot returns read-only copies of the item and record collections.
func (uc *implUseCase) Snapshot(ctx context.Context) ([]model.ClothingItem, []model.WearRecord) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	items := make([]model.ClothingItem, len(uc.items))
	copy(items, uc.items)
	records := make([]model.WearRecord, len(uc.records))
	copy(records, uc.records)
	return items, records
}
