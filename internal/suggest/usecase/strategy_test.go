package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/pkg/moods"
)

var testNow = time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

func wardrobeItem(id string, category model.Category, seasons []model.Season, wear int) model.ClothingItem {
	return model.ClothingItem{
		ID:            id,
		Category:      category,
		Subcategory:   "Piece " + id,
		Color:         "Blue",
		ColorHex:      "#0000FF",
		Season:        seasons,
		WearFrequency: wear,
	}
}

func allSeasons() []model.Season {
	return append([]model.Season(nil), model.Seasons...)
}

func TestInferSeason(t *testing.T) {
	cases := []struct {
		name    string
		weather model.WeatherSnapshot
		want    model.Season
	}{
		{"Freezing", model.WeatherSnapshot{Temperature: 2, Condition: "Clear"}, model.SeasonWinter},
		{"Cool", model.WeatherSnapshot{Temperature: 12, Condition: "Cloudy"}, model.SeasonFall},
		{"Mild", model.WeatherSnapshot{Temperature: 20, Condition: "Sunny"}, model.SeasonSpring},
		{"Hot", model.WeatherSnapshot{Temperature: 30, Condition: "Sunny"}, model.SeasonSummer},
		{"Snow Overrides Reading", model.WeatherSnapshot{Temperature: 20, Condition: "Light Snow"}, model.SeasonWinter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inferSeason(tc.weather))
		})
	}
}

func TestWeightedStrategyAssemble(t *testing.T) {
	mood := moods.Default()
	mild := model.WeatherSnapshot{Temperature: 20, Condition: "Sunny", Location: "Test City"}

	t.Run("Under Two Items Yields Nothing", func(t *testing.T) {
		s := NewWeightedStrategy(3)
		out := s.Assemble([]model.ClothingItem{wardrobeItem("a", model.CategoryTops, allSeasons(), 0)}, mood, mild, testNow)
		assert.Empty(t, out)
	})

	t.Run("Two Item Wardrobe Uses Exactly Those", func(t *testing.T) {
		s := NewWeightedStrategy(3)
		items := []model.ClothingItem{
			wardrobeItem("a", model.CategoryTops, allSeasons(), 0),
			wardrobeItem("b", model.CategoryBottoms, allSeasons(), 0),
		}
		out := s.Assemble(items, mood, mild, testNow)
		require.Len(t, out, 1)
		require.Len(t, out[0].Items, 2)
		assert.Equal(t, "a", out[0].Items[0].ID)
		assert.Equal(t, "b", out[0].Items[1].ID)
	})

	t.Run("Season Inappropriate Items Excluded When Alternatives Exist", func(t *testing.T) {
		s := NewWeightedStrategy(3)
		cold := model.WeatherSnapshot{Temperature: 2, Condition: "Clear", Location: "Test City"}
		items := []model.ClothingItem{
			wardrobeItem("coat", model.CategoryOuterwear, []model.Season{model.SeasonWinter}, 1),
			wardrobeItem("boots", model.CategoryShoes, []model.Season{model.SeasonWinter}, 1),
			wardrobeItem("tank", model.CategoryTops, []model.Season{model.SeasonSummer}, 1),
		}
		out := s.Assemble(items, mood, cold, testNow)
		require.NotEmpty(t, out)
		for _, suggestion := range out {
			for _, picked := range suggestion.Items {
				assert.NotEqual(t, "tank", picked.ID, "summer-only item must be filtered in winter")
			}
		}
	})

	t.Run("Outfit Invariants", func(t *testing.T) {
		s := NewWeightedStrategy(5)
		items := []model.ClothingItem{
			wardrobeItem("t1", model.CategoryTops, allSeasons(), 0),
			wardrobeItem("t2", model.CategoryTops, allSeasons(), 4),
			wardrobeItem("b1", model.CategoryBottoms, allSeasons(), 2),
			wardrobeItem("b2", model.CategoryBottoms, allSeasons(), 6),
			wardrobeItem("s1", model.CategoryShoes, allSeasons(), 1),
			wardrobeItem("d1", model.CategoryDresses, allSeasons(), 0),
		}
		out := s.Assemble(items, mood, mild, testNow)
		require.NotEmpty(t, out)

		known := map[string]bool{}
		for _, item := range items {
			known[item.ID] = true
		}
		for _, suggestion := range out {
			assert.GreaterOrEqual(t, len(suggestion.Items), 2, "every outfit needs at least two items")
			seen := map[string]bool{}
			for _, picked := range suggestion.Items {
				assert.True(t, known[picked.ID], "items must come from the wardrobe")
				assert.False(t, seen[picked.ID], "no duplicate items in one outfit")
				seen[picked.ID] = true
			}
			assert.GreaterOrEqual(t, suggestion.WeatherMatch, 0)
			assert.LessOrEqual(t, suggestion.WeatherMatch, 100)
			assert.NotEmpty(t, suggestion.Explanation)
		}
	})

	t.Run("Ranked Best First", func(t *testing.T) {
		s := NewWeightedStrategy(5)
		items := []model.ClothingItem{
			wardrobeItem("t1", model.CategoryTops, allSeasons(), 0),
			wardrobeItem("t2", model.CategoryTops, []model.Season{model.SeasonWinter}, 9),
			wardrobeItem("b1", model.CategoryBottoms, allSeasons(), 0),
			wardrobeItem("b2", model.CategoryBottoms, []model.Season{model.SeasonWinter}, 9),
		}
		out := s.Assemble(items, mood, mild, testNow)
		require.NotEmpty(t, out)
		for i := 1; i < len(out); i++ {
			prev := out[i-1].WeatherMatch + out[i-1].WearScore
			cur := out[i].WeatherMatch + out[i].WearScore
			assert.GreaterOrEqual(t, prev, cur, "suggestions must be ordered best first")
		}
	})

	t.Run("Explanation Names Mood And Weather", func(t *testing.T) {
		s := NewWeightedStrategy(3)
		items := []model.ClothingItem{
			wardrobeItem("a", model.CategoryTops, allSeasons(), 0),
			wardrobeItem("b", model.CategoryBottoms, allSeasons(), 0),
		}
		out := s.Assemble(items, mood, mild, testNow)
		require.Len(t, out, 1)
		assert.Contains(t, out[0].Explanation, "casual")
		assert.Contains(t, out[0].Explanation, "sunny")
		assert.Contains(t, out[0].Explanation, "Test City")
	})
}

func TestRandomStrategyAssemble(t *testing.T) {
	mood := moods.Default()
	mild := model.WeatherSnapshot{Temperature: 20, Condition: "Sunny"}

	t.Run("Respects Outfit Invariants", func(t *testing.T) {
		s := NewRandomStrategy(4, 42)
		items := []model.ClothingItem{
			wardrobeItem("a", model.CategoryTops, allSeasons(), 0),
			wardrobeItem("b", model.CategoryBottoms, allSeasons(), 0),
			wardrobeItem("c", model.CategoryShoes, allSeasons(), 0),
			wardrobeItem("d", model.CategoryOuterwear, allSeasons(), 0),
		}
		out := s.Assemble(items, mood, mild, testNow)
		require.Len(t, out, 4)
		for _, suggestion := range out {
			assert.GreaterOrEqual(t, len(suggestion.Items), 2)
			seen := map[string]bool{}
			for _, picked := range suggestion.Items {
				assert.False(t, seen[picked.ID])
				seen[picked.ID] = true
			}
		}
	})

	t.Run("Two Item Wardrobe Uses Exactly Those", func(t *testing.T) {
		s := NewRandomStrategy(3, 1)
		items := []model.ClothingItem{
			wardrobeItem("a", model.CategoryTops, allSeasons(), 0),
			wardrobeItem("b", model.CategoryBottoms, allSeasons(), 0),
		}
		out := s.Assemble(items, mood, mild, testNow)
		require.Len(t, out, 1)
		assert.Len(t, out[0].Items, 2)
	})
}
