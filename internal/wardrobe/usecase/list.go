package usecase

import (
	"context"
	"sort"
	"strings"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
)

// ListItems filters then sorts a copy of the collection. Both steps are pure
// and deterministic: the same state yields the same listing.
func (uc *implUseCase) ListItems(ctx context.Context, input wardrobe.ListItemsInput) (wardrobe.ListItemsOutput, error) {
	uc.mu.RLock()
	filtered := make([]model.ClothingItem, 0, len(uc.items))
	for _, item := range uc.items {
		if matchesFilter(item, input) {
			filtered = append(filtered, item)
		}
	}
	uc.mu.RUnlock()

	sortItems(filtered, input.Sort)

	total := len(filtered)
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	page := filtered[offset:]
	if input.Limit > 0 && input.Limit < len(page) {
		page = page[:input.Limit]
	}

	return wardrobe.ListItemsOutput{
		Items:  page,
		Total:  total,
		Limit:  input.Limit,
		Offset: offset,
	}, nil
}

func matchesFilter(item model.ClothingItem, input wardrobe.ListItemsInput) bool {
	if input.Category != "" && item.Category != input.Category {
		return false
	}
	if input.Season != "" && !item.WornIn(input.Season) {
		return false
	}
	if input.Search != "" && !matchesSearch(item, input.Search) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match over subcategory,
// color name and AI tags.
func matchesSearch(item model.ClothingItem, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(item.Subcategory), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Color), q) {
		return true
	}
	for _, tag := range item.AITags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortItems orders in place. The collection is kept newest-first, so the
// default "recent" sort is the identity.
func sortItems(items []model.ClothingItem, by wardrobe.Sort) {
	switch by {
	case wardrobe.SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DateAdded.Before(items[j].DateAdded)
		})
	case wardrobe.SortMostWorn:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].WearFrequency > items[j].WearFrequency
		})
	case wardrobe.SortLeastWorn:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].WearFrequency < items[j].WearFrequency
		})
	case wardrobe.SortRecent, "":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DateAdded.After(items[j].DateAdded)
		})
	}
}
