package usecase

import (
	"context"
	"sort"
	"time"

	"wardrobe-ai/internal/insights"
	"wardrobe-ai/internal/model"
)

const (
	topColors    = 5
	paletteSize  = 8
	topItems     = 5
	weekdayCount = 7
)

var dayLabels = [weekdayCount]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Overview recomputes all analytics from the current snapshot. Nothing is
// cached: derived values always agree with the latest state.
func (uc *implUseCase) Overview(ctx context.Context) (insights.Overview, error) {
	items, records := uc.source.Snapshot(ctx)
	now := uc.nowFunc()

	mostWorn, leastWorn := wornExtremes(items)

	return insights.Overview{
		MostWornColors:    colorsByWear(items),
		Palette:           colorsByItemCount(items),
		MostWornItems:     mostWorn,
		LeastWornItems:    leastWorn,
		Nudges:            uc.nudges(items, records, now),
		WeeklyWearPattern: weeklyPattern(records, now),
	}, nil
}

// colorsByWear groups items by colorHex and sums wear counters, descending.
func colorsByWear(items []model.ClothingItem) []insights.ColorCount {
	byHex := make(map[string]*insights.ColorCount)
	order := make([]string, 0)

	for _, item := range items {
		hex := item.ColorHex
		if hex == "" {
			hex = model.DefaultColorHex
		}
		if existing, ok := byHex[hex]; ok {
			existing.Count += item.WearFrequency
			continue
		}
		byHex[hex] = &insights.ColorCount{Color: item.Color, Hex: hex, Count: item.WearFrequency}
		order = append(order, hex)
	}

	counts := make([]insights.ColorCount, 0, len(order))
	for _, hex := range order {
		counts = append(counts, *byHex[hex])
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	if len(counts) > topColors {
		counts = counts[:topColors]
	}
	return counts
}

// colorsByItemCount is the broader palette view: item counts per hex, top 8.
func colorsByItemCount(items []model.ClothingItem) []insights.ColorCount {
	byHex := make(map[string]*insights.ColorCount)
	order := make([]string, 0)

	for _, item := range items {
		hex := item.ColorHex
		if hex == "" {
			hex = model.DefaultColorHex
		}
		if existing, ok := byHex[hex]; ok {
			existing.Count++
			continue
		}
		byHex[hex] = &insights.ColorCount{Color: item.Color, Hex: hex, Count: 1}
		order = append(order, hex)
	}

	counts := make([]insights.ColorCount, 0, len(order))
	for _, hex := range order {
		counts = append(counts, *byHex[hex])
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })

	if len(counts) > paletteSize {
		counts = counts[:paletteSize]
	}
	return counts
}

// wornExtremes sorts once descending by wear frequency and reads both ends:
// the head is most-worn, the tail (read backwards) is least-worn. Ordering
// among equal counts follows the stable sort and is not guaranteed.
func wornExtremes(items []model.ClothingItem) (mostWorn, leastWorn []insights.ItemWearCount) {
	sorted := make([]model.ClothingItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].WearFrequency > sorted[j].WearFrequency
	})

	for i := 0; i < len(sorted) && i < topItems; i++ {
		mostWorn = append(mostWorn, insights.ItemWearCount{Item: sorted[i], Count: sorted[i].WearFrequency})
	}
	for i := len(sorted) - 1; i >= 0 && len(leastWorn) < topItems; i-- {
		leastWorn = append(leastWorn, insights.ItemWearCount{Item: sorted[i], Count: sorted[i].WearFrequency})
	}
	return mostWorn, leastWorn
}

// weeklyPattern buckets wear records into the 7 days of the current week
// (Monday start). Records from other weeks are excluded; empty days stay 0.
func weeklyPattern(records []model.WearRecord, now time.Time) []insights.DayCount {
	start := startOfWeek(now)

	pattern := make([]insights.DayCount, weekdayCount)
	for i := 0; i < weekdayCount; i++ {
		day := start.AddDate(0, 0, i)
		count := 0
		for _, record := range records {
			if sameDay(record.Date, day) {
				count++
			}
		}
		pattern[i] = insights.DayCount{Day: dayLabels[i], Count: count}
	}
	return pattern
}
