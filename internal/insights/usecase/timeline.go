package usecase

import (
	"context"

	"wardrobe-ai/internal/insights"
	"wardrobe-ai/internal/model"
)

const timelineItemPreview = 3

// Timeline returns the current week as 7 days (Monday start), each carrying
// the distinct items worn that day. Item ids that no longer resolve are
// skipped silently.
func (uc *implUseCase) Timeline(ctx context.Context) ([]insights.TimelineDay, error) {
	items, records := uc.source.Snapshot(ctx)
	now := uc.nowFunc()
	start := startOfWeek(now)

	byID := make(map[string]model.ClothingItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	days := make([]insights.TimelineDay, 0, weekdayCount)
	for i := 0; i < weekdayCount; i++ {
		day := start.AddDate(0, 0, i)

		seen := make(map[string]bool)
		worn := make([]model.ClothingItem, 0, timelineItemPreview)
		recordCount := 0
		for _, record := range records {
			if !sameDay(record.Date, day) {
				continue
			}
			recordCount++
			for _, id := range record.OutfitItems {
				if seen[id] || len(worn) >= timelineItemPreview {
					continue
				}
				item, ok := byID[id]
				if !ok {
					continue
				}
				seen[id] = true
				worn = append(worn, item)
			}
		}

		days = append(days, insights.TimelineDay{
			Date:        day,
			DayLabel:    dayLabels[i],
			DayNum:      day.Day(),
			IsToday:     sameDay(day, now),
			RecordCount: recordCount,
			Items:       worn,
		})
	}
	return days, nil
}
