package suggest

import (
	"context"
	"time"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe"
)

// Strategy assembles ranked outfit suggestions from a wardrobe snapshot.
// Implementations never fabricate items and never repeat an item within one
// outfit.
type Strategy interface {
	Assemble(items []model.ClothingItem, mood model.FashionMood, weather model.WeatherSnapshot, now time.Time) []model.Suggestion
}

// WearLedger is the slice of the wardrobe owner the recommender needs: a
// read-only snapshot to assemble from and the single write path for
// committing a worn outfit.
type WearLedger interface {
	Snapshot(ctx context.Context) ([]model.ClothingItem, []model.WearRecord)
	LogOutfitWear(ctx context.Context, input wardrobe.LogWearInput) (model.WearRecord, error)
}

// UseCase manages suggestion sessions.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Regenerate(ctx context.Context, id string) (Session, error)
	Wear(ctx context.Context, input WearInput) (Session, error)
}
