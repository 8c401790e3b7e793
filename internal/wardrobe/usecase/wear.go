package usecase

import (
	"context"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
)

// LogOutfitWear records one wear event. Every referenced item that still
// exists gets +1 wearFrequency and the shared event timestamp as lastWorn;
// unknown ids are kept verbatim in the record for historical intent. The
// whole update happens under one lock so no partial state is ever visible.
func (uc *implUseCase) LogOutfitWear(ctx context.Context, input wardrobe.LogWearInput) (model.WearRecord, error) {
	if len(input.ItemIDs) == 0 {
		return model.WearRecord{}, wardrobe.ErrEmptyOutfit
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.nowFunc()
	record := model.WearRecord{
		ID:          uc.newID(),
		Date:        now,
		OutfitItems: append([]string(nil), input.ItemIDs...),
		Mood:        input.MoodID,
		Weather:     input.Weather,
	}

	worn := make(map[string]bool, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		worn[id] = true
	}

	updated := 0
	for i := range uc.items {
		if !worn[uc.items[i].ID] {
			continue
		}
		uc.items[i].WearFrequency++
		lastWorn := now
		uc.items[i].LastWorn = &lastWorn
		updated++
	}

	uc.records = append([]model.WearRecord{record}, uc.records...)

	uc.persistItems(ctx)
	uc.persistRecords(ctx)

	uc.l.Infof(ctx, "wardrobe: logged wear record %s (%d/%d items updated)",
		record.ID, updated, len(input.ItemIDs))

	return record, nil
}

// ListWearRecords returns the wear history, newest first.
func (uc *implUseCase) ListWearRecords(ctx context.Context) ([]model.WearRecord, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	records := make([]model.WearRecord, len(uc.records))
	copy(records, uc.records)
	return records, nil
}
