package repository

import (
	"context"

	"wardrobe-ai/internal/model"
)

// Repository is the persistence boundary for wardrobe state. It speaks
// whole-collection snapshots over three keys, matching the key-value
// storage contract: every mutation rewrites the affected snapshot.
type Repository interface {
	LoadItems(ctx context.Context) ([]model.ClothingItem, error)
	SaveItems(ctx context.Context, items []model.ClothingItem) error

	LoadRecords(ctx context.Context) ([]model.WearRecord, error)
	SaveRecords(ctx context.Context, records []model.WearRecord) error

	LoadBookmarks(ctx context.Context) ([]string, error)
	SaveBookmarks(ctx context.Context, ids []string) error

	Close() error
}
