package usecase

import (
	"fmt"
	"sort"
	"time"

	"wardrobe-ai/internal/insights"
	"wardrobe-ai/internal/model"
)

const (
	neglectThresholdDays = 14
	colorDominanceRatio  = 0.4
	varietyWindowDays    = 7
)

// nudges builds the behavioral suggestion list for the current snapshot.
// An empty wardrobe yields a single starter nudge.
func (uc *implUseCase) nudges(items []model.ClothingItem, records []model.WearRecord, now time.Time) []insights.Nudge {
	if len(items) == 0 {
		return []insights.Nudge{{
			Type:        insights.NudgeVariety,
			Title:       "Build your wardrobe",
			Description: "Add a few clothing items to start getting personalized insights.",
			ActionLabel: "Add items",
		}}
	}

	out := make([]insights.Nudge, 0, 4)

	if n, ok := frequencyNudge(items); ok {
		out = append(out, n)
	}
	if n, ok := neglectNudge(items, now); ok {
		out = append(out, n)
	}
	if n, ok := colorNudge(items); ok {
		out = append(out, n)
	}
	if n, ok := varietyNudge(items, now); ok {
		out = append(out, n)
	}
	return out
}

// frequencyNudge points at the least-worn item. It fires for every non-empty
// wardrobe, so the list always carries at least one suggestion. Ties go to
// the first item in collection order.
func frequencyNudge(items []model.ClothingItem) (insights.Nudge, bool) {
	if len(items) == 0 {
		return insights.Nudge{}, false
	}

	least := items[0]
	for _, item := range items[1:] {
		if item.WearFrequency < least.WearFrequency {
			least = item
		}
	}

	return insights.Nudge{
		Type:        insights.NudgeFrequency,
		Title:       "Underused item",
		Description: fmt.Sprintf("Try wearing your %s more often!", least.Subcategory),
		ActionLabel: "View item",
	}, true
}

// neglectNudge flags the item that has gone unworn the longest past the
// threshold. Items never worn at all are handled by the frequency nudge.
func neglectNudge(items []model.ClothingItem, now time.Time) (insights.Nudge, bool) {
	var oldest *model.ClothingItem
	for i := range items {
		if items[i].LastWorn == nil {
			continue
		}
		if oldest == nil || items[i].LastWorn.Before(*oldest.LastWorn) {
			oldest = &items[i]
		}
	}
	if oldest == nil {
		return insights.Nudge{}, false
	}

	days := int(now.Sub(*oldest.LastWorn).Hours() / 24)
	if days <= neglectThresholdDays {
		return insights.Nudge{}, false
	}

	return insights.Nudge{
		Type:        insights.NudgeNeglect,
		Title:       "Forgotten favorite",
		Description: fmt.Sprintf("Your %s hasn't been worn in %d days.", oldest.Subcategory, days),
		ActionLabel: "Plan an outfit",
	}, true
}

// colorNudge fires when one color dominates total wear.
func colorNudge(items []model.ClothingItem) (insights.Nudge, bool) {
	totalWear := 0
	byHex := make(map[string]int)
	names := make(map[string]string)
	for _, item := range items {
		hex := item.ColorHex
		if hex == "" {
			hex = model.DefaultColorHex
		}
		byHex[hex] += item.WearFrequency
		totalWear += item.WearFrequency
		if _, ok := names[hex]; !ok {
			names[hex] = item.Color
		}
	}
	if totalWear == 0 {
		return insights.Nudge{}, false
	}

	hexes := make([]string, 0, len(byHex))
	for hex := range byHex {
		hexes = append(hexes, hex)
	}
	sort.Slice(hexes, func(i, j int) bool { return byHex[hexes[i]] > byHex[hexes[j]] })

	top := hexes[0]
	if float64(byHex[top])/float64(totalWear) <= colorDominanceRatio {
		return insights.Nudge{}, false
	}

	return insights.Nudge{
		Type:        insights.NudgeColor,
		Title:       "Color rut",
		Description: fmt.Sprintf("Most of your wears are %s. Mix in another color this week.", names[top]),
		ActionLabel: "Browse wardrobe",
	}, true
}

// varietyNudge praises an evenly rotated wardrobe: every item worn within
// the window.
func varietyNudge(items []model.ClothingItem, now time.Time) (insights.Nudge, bool) {
	cutoff := now.AddDate(0, 0, -varietyWindowDays)
	for _, item := range items {
		if item.LastWorn == nil || item.LastWorn.Before(cutoff) {
			return insights.Nudge{}, false
		}
	}

	return insights.Nudge{
		Type:        insights.NudgeVariety,
		Title:       "Great rotation",
		Description: "You've worn everything in your wardrobe this week. Keep it up!",
		ActionLabel: "See insights",
	}, true
}
