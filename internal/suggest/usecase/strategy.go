package usecase

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wardrobe-ai/internal/model"
)

const (
	// Temperature bands for mapping a reading onto a wardrobe season, °C.
	winterBelow = 8.0
	fallBelow   = 16.0
	springBelow = 24.0

	layeringBelow = 16.0
	strongWindKMH = 30

	defaultMaxSuggestions = 3
	moodAffinityBonus     = 10
)

// inferSeason maps current conditions onto the season tags items carry.
// Snow forces winter regardless of the reading.
func inferSeason(w model.WeatherSnapshot) model.Season {
	if strings.Contains(strings.ToLower(w.Condition), "snow") {
		return model.SeasonWinter
	}
	switch {
	case w.Temperature < winterBelow:
		return model.SeasonWinter
	case w.Temperature < fallBelow:
		return model.SeasonFall
	case w.Temperature < springBelow:
		return model.SeasonSpring
	default:
		return model.SeasonSummer
	}
}

// WeightedStrategy builds category-aware outfits, filters for the inferred
// season, and ranks by weather fit plus a rotation score that favors fresh,
// rarely worn pieces.
type WeightedStrategy struct {
	MaxSuggestions int
}

func NewWeightedStrategy(maxSuggestions int) *WeightedStrategy {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	return &WeightedStrategy{MaxSuggestions: maxSuggestions}
}

func (s *WeightedStrategy) Assemble(items []model.ClothingItem, mood model.FashionMood, weather model.WeatherSnapshot, now time.Time) []model.Suggestion {
	if len(items) < 2 {
		return nil
	}
	if len(items) == 2 {
		outfit := []model.ClothingItem{items[0], items[1]}
		return []model.Suggestion{scoreOutfit(outfit, mood, weather, now)}
	}

	season := inferSeason(weather)
	pool := make([]model.ClothingItem, 0, len(items))
	for _, item := range items {
		if item.WornIn(season) {
			pool = append(pool, item)
		}
	}
	// A too-aggressive filter must not starve the recommender.
	if len(pool) < 2 {
		pool = items
	}

	groups := groupByCategory(pool)
	for _, group := range groups {
		sortByRotation(group, now)
	}

	candidates := buildCandidates(groups, weather)
	if len(candidates) == 0 {
		candidates = fallbackPairs(pool)
	}

	suggestions := make([]model.Suggestion, 0, len(candidates))
	for _, outfit := range candidates {
		suggestions = append(suggestions, scoreOutfit(outfit, mood, weather, now))
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].WeatherMatch+suggestions[i].WearScore >
			suggestions[j].WeatherMatch+suggestions[j].WearScore
	})

	if len(suggestions) > s.MaxSuggestions {
		suggestions = suggestions[:s.MaxSuggestions]
	}
	return suggestions
}

func groupByCategory(items []model.ClothingItem) map[model.Category][]model.ClothingItem {
	groups := make(map[model.Category][]model.ClothingItem)
	for _, item := range items {
		groups[item.Category] = append(groups[item.Category], item)
	}
	return groups
}

// sortByRotation orders a group so the pieces most due for a wear come first.
func sortByRotation(group []model.ClothingItem, now time.Time) {
	sort.SliceStable(group, func(i, j int) bool {
		return rotationScore(group[i], now) > rotationScore(group[j], now)
	})
}

// rotationScore rewards low wear counters and long gaps since the last wear.
func rotationScore(item model.ClothingItem, now time.Time) int {
	score := 40 - item.WearFrequency*4
	if score < 0 {
		score = 0
	}
	if item.LastWorn == nil {
		return score + 30
	}
	days := int(now.Sub(*item.LastWorn).Hours() / 24)
	if days > 30 {
		days = 30
	}
	if days < 0 {
		days = 0
	}
	return score + days
}

// buildCandidates assembles outfit skeletons: dress-led and top+bottom
// combinations, layered with outerwear in cold weather and finished with
// shoes when available. Groups arrive pre-sorted so pairing i-th with i-th
// spreads wear across the wardrobe.
func buildCandidates(groups map[model.Category][]model.ClothingItem, weather model.WeatherSnapshot) [][]model.ClothingItem {
	tops := groups[model.CategoryTops]
	bottoms := groups[model.CategoryBottoms]
	dresses := groups[model.CategoryDresses]
	outerwear := groups[model.CategoryOuterwear]
	shoes := groups[model.CategoryShoes]

	needsLayer := weather.Temperature < layeringBelow

	var candidates [][]model.ClothingItem

	for i, dress := range dresses {
		outfit := []model.ClothingItem{dress}
		if len(shoes) > 0 {
			outfit = append(outfit, shoes[i%len(shoes)])
		}
		if needsLayer && len(outerwear) > 0 {
			outfit = append(outfit, outerwear[i%len(outerwear)])
		}
		if len(outfit) >= 2 {
			candidates = append(candidates, outfit)
		}
	}

	pairs := len(tops)
	if len(bottoms) < pairs {
		pairs = len(bottoms)
	}
	for i := 0; i < pairs; i++ {
		outfit := []model.ClothingItem{tops[i], bottoms[i]}
		if needsLayer && len(outerwear) > 0 {
			outfit = append(outfit, outerwear[i%len(outerwear)])
		}
		if len(shoes) > 0 {
			outfit = append(outfit, shoes[i%len(shoes)])
		}
		candidates = append(candidates, outfit)
	}

	return candidates
}

// fallbackPairs covers wardrobes whose categories cannot form a standard
// outfit (all tops, say). Adjacent pairs keep the no-duplicate guarantee.
func fallbackPairs(pool []model.ClothingItem) [][]model.ClothingItem {
	var candidates [][]model.ClothingItem
	for i := 0; i+1 < len(pool); i += 2 {
		candidates = append(candidates, []model.ClothingItem{pool[i], pool[i+1]})
	}
	return candidates
}

// scoreOutfit computes the weather match (0-100), the rotation score and the
// human explanation for one assembled outfit.
func scoreOutfit(outfit []model.ClothingItem, mood model.FashionMood, weather model.WeatherSnapshot, now time.Time) model.Suggestion {
	season := inferSeason(weather)

	inSeason := 0
	hasOuterwear := false
	wearScore := 0
	moodMatched := false
	for _, item := range outfit {
		if item.WornIn(season) {
			inSeason++
		}
		if item.Category == model.CategoryOuterwear {
			hasOuterwear = true
		}
		wearScore += rotationScore(item, now)
		if !moodMatched && matchesMood(item, mood) {
			moodMatched = true
		}
	}

	weatherMatch := inSeason * 100 / len(outfit)
	condition := strings.ToLower(weather.Condition)
	if !hasOuterwear {
		if strings.Contains(condition, "rain") || strings.Contains(condition, "storm") {
			weatherMatch -= 15
		}
		if weather.WindSpeed > strongWindKMH {
			weatherMatch -= 10
		}
	}
	if weatherMatch < 0 {
		weatherMatch = 0
	}

	wearScore /= len(outfit)
	if moodMatched {
		wearScore += moodAffinityBonus
	}

	return model.Suggestion{
		ID:           uuid.NewString(),
		Items:        outfit,
		Mood:         mood,
		WeatherMatch: weatherMatch,
		WearScore:    wearScore,
		Explanation: fmt.Sprintf("A %s look for %s, %.0f°C in %s.",
			strings.ToLower(mood.Name), condition, weather.Temperature, weather.Location),
	}
}

// matchesMood reports whether the item leans toward the mood: a shared tag
// or a palette color.
func matchesMood(item model.ClothingItem, mood model.FashionMood) bool {
	for _, tag := range item.AITags {
		for _, moodTag := range mood.Tags {
			if strings.EqualFold(tag, moodTag) {
				return true
			}
		}
	}
	for _, hex := range mood.ColorPalette {
		if strings.EqualFold(item.ColorHex, hex) {
			return true
		}
	}
	return false
}

// RandomStrategy samples outfits uniformly. It is both a selectable strategy
// and the fallback when the primary strategy fails.
type RandomStrategy struct {
	MaxSuggestions int

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandomStrategy(maxSuggestions int, seed int64) *RandomStrategy {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	return &RandomStrategy{
		MaxSuggestions: maxSuggestions,
		rnd:            rand.New(rand.NewSource(seed)),
	}
}

func (s *RandomStrategy) Assemble(items []model.ClothingItem, mood model.FashionMood, weather model.WeatherSnapshot, now time.Time) []model.Suggestion {
	if len(items) < 2 {
		return nil
	}
	if len(items) == 2 {
		outfit := []model.ClothingItem{items[0], items[1]}
		return []model.Suggestion{scoreOutfit(outfit, mood, weather, now)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	suggestions := make([]model.Suggestion, 0, s.MaxSuggestions)
	for i := 0; i < s.MaxSuggestions; i++ {
		shuffled := make([]model.ClothingItem, len(items))
		copy(shuffled, items)
		s.rnd.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		size := 2 + s.rnd.Intn(2)
		if size > len(shuffled) {
			size = len(shuffled)
		}
		suggestions = append(suggestions, scoreOutfit(shuffled[:size], mood, weather, now))
	}
	return suggestions
}
