package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/suggest"
	"wardrobe-ai/internal/wardrobe"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubLedger records committed wears.
type stubLedger struct {
	items      []model.ClothingItem
	records    []model.WearRecord
	wearInputs []wardrobe.LogWearInput
	wearErr    error
}

func (s *stubLedger) Snapshot(ctx context.Context) ([]model.ClothingItem, []model.WearRecord) {
	return s.items, s.records
}

func (s *stubLedger) LogOutfitWear(ctx context.Context, input wardrobe.LogWearInput) (model.WearRecord, error) {
	if s.wearErr != nil {
		return model.WearRecord{}, s.wearErr
	}
	s.wearInputs = append(s.wearInputs, input)
	return model.WearRecord{ID: "committed", OutfitItems: input.ItemIDs}, nil
}

func newSessionUseCase(ledger *stubLedger) *implUseCase {
	uc := New(&mockLogger{}, Config{Strategy: "weighted", MaxSuggestions: 3}, ledger, nil)
	uc.nowFunc = func() time.Time { return testNow }
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("sess-%d", seq)
	}
	return uc
}

func dressedLedger() *stubLedger {
	return &stubLedger{items: []model.ClothingItem{
		wardrobeItem("t1", model.CategoryTops, allSeasons(), 0),
		wardrobeItem("b1", model.CategoryBottoms, allSeasons(), 0),
	}}
}

func suppliedWeather() *model.WeatherSnapshot {
	return &model.WeatherSnapshot{Temperature: 20, Condition: "Sunny", Location: "Test City"}
}

func TestSessionCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Ready With Suggestions", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		session, err := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})
		require.NoError(t, err)

		assert.Equal(t, suggest.StateReady, session.State)
		assert.NotEmpty(t, session.Suggestions)
		assert.Equal(t, "casual", session.MoodID)
		assert.Equal(t, "Test City", session.Weather.Location)
	})

	t.Run("Empty Wardrobe State Not Error", func(t *testing.T) {
		uc := newSessionUseCase(&stubLedger{})
		session, err := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})
		require.NoError(t, err)

		assert.Equal(t, suggest.StateEmptyWardrobe, session.State)
		assert.Empty(t, session.Suggestions)
	})

	t.Run("Unknown Mood Falls Back To Default", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		session, err := uc.Create(ctx, suggest.CreateInput{MoodID: "nonexistent", Weather: suppliedWeather()})
		require.NoError(t, err)
		assert.Equal(t, "casual", session.MoodID)
	})

	t.Run("Nil Weather Client Uses Default Snapshot", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		session, err := uc.Create(ctx, suggest.CreateInput{MoodID: "casual"})
		require.NoError(t, err)
		assert.Equal(t, "San Francisco", session.Weather.Location)
	})
}

type panickyStrategy struct{}

func (panickyStrategy) Assemble(items []model.ClothingItem, mood model.FashionMood, weather model.WeatherSnapshot, now time.Time) []model.Suggestion {
	panic("strategy blew up")
}

func TestSessionStrategyDegradation(t *testing.T) {
	ctx := context.Background()

	t.Run("Primary Failure Falls Back To Random", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		uc.strategy = panickyStrategy{}

		session, err := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})
		require.NoError(t, err)
		assert.Equal(t, suggest.StateReady, session.State)
		assert.NotEmpty(t, session.Suggestions)
	})

	t.Run("Fallback Failure Yields Error State", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		uc.strategy = panickyStrategy{}
		uc.fallback = panickyStrategy{}

		session, err := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})
		require.NoError(t, err)
		assert.Equal(t, suggest.StateError, session.State)
		assert.NotEmpty(t, session.Error)

		// Error is a retryable state.
		uc.strategy = NewWeightedStrategy(3)
		regenerated, err := uc.Regenerate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, suggest.StateReady, regenerated.State)
	})
}

func TestSessionGet(t *testing.T) {
	ctx := context.Background()
	uc := newSessionUseCase(dressedLedger())

	created, err := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		got, err := uc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, suggest.StateReady, got.State)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := uc.Get(ctx, "missing")
		assert.ErrorIs(t, err, suggest.ErrSessionNotFound)
	})
}

func TestSessionRegenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Ready To Ready", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		created, _ := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})

		regenerated, err := uc.Regenerate(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, suggest.StateReady, regenerated.State)
		assert.NotEmpty(t, regenerated.Suggestions)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		_, err := uc.Regenerate(ctx, "missing")
		assert.ErrorIs(t, err, suggest.ErrSessionNotFound)
	})

	t.Run("Worn Session Is Terminal", func(t *testing.T) {
		ledger := dressedLedger()
		uc := newSessionUseCase(ledger)
		created, _ := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})

		_, err := uc.Wear(ctx, suggest.WearInput{
			SessionID:    created.ID,
			SuggestionID: created.Suggestions[0].ID,
		})
		require.NoError(t, err)

		_, err = uc.Regenerate(ctx, created.ID)
		assert.ErrorIs(t, err, suggest.ErrInvalidTransition)
	})
}

func TestSessionWear(t *testing.T) {
	ctx := context.Background()

	t.Run("Commits Through Ledger", func(t *testing.T) {
		ledger := dressedLedger()
		uc := newSessionUseCase(ledger)
		created, _ := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})
		require.NotEmpty(t, created.Suggestions)

		worn, err := uc.Wear(ctx, suggest.WearInput{
			SessionID:    created.ID,
			SuggestionID: created.Suggestions[0].ID,
		})
		require.NoError(t, err)
		assert.Equal(t, suggest.StateWorn, worn.State)

		require.Len(t, ledger.wearInputs, 1)
		assert.Equal(t, "casual", ledger.wearInputs[0].MoodID)
		assert.Len(t, ledger.wearInputs[0].ItemIDs, len(created.Suggestions[0].Items))
	})

	t.Run("Unknown Suggestion", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		created, _ := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})

		_, err := uc.Wear(ctx, suggest.WearInput{SessionID: created.ID, SuggestionID: "ghost"})
		assert.ErrorIs(t, err, suggest.ErrSuggestionNotFound)
	})

	t.Run("Ledger Failure Keeps Session Ready", func(t *testing.T) {
		ledger := dressedLedger()
		ledger.wearErr = errors.New("store offline")
		uc := newSessionUseCase(ledger)
		created, _ := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})

		_, err := uc.Wear(ctx, suggest.WearInput{
			SessionID:    created.ID,
			SuggestionID: created.Suggestions[0].ID,
		})
		require.Error(t, err)

		got, _ := uc.Get(ctx, created.ID)
		assert.Equal(t, suggest.StateReady, got.State, "failed commit must not close the session")
	})

	t.Run("Second Wear Rejected", func(t *testing.T) {
		uc := newSessionUseCase(dressedLedger())
		created, _ := uc.Create(ctx, suggest.CreateInput{MoodID: "casual", Weather: suppliedWeather()})

		input := suggest.WearInput{SessionID: created.ID, SuggestionID: created.Suggestions[0].ID}
		_, err := uc.Wear(ctx, input)
		require.NoError(t, err)

		_, err = uc.Wear(ctx, input)
		assert.ErrorIs(t, err, suggest.ErrInvalidTransition)
	})
}
