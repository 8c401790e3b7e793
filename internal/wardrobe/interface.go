package wardrobe

import (
	"context"

	"wardrobe-ai/internal/model"
)

// UseCase is the single owner of wardrobe state: the item store and the wear
// ledger. All other components read through Snapshot and never mutate.
type UseCase interface {
	// Item CRUD
	AddItem(ctx context.Context, input AddItemInput) (model.ClothingItem, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) error
	DeleteItem(ctx context.Context, id string) error
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	ListItems(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)

	// Wear ledger
	AdjustWear(ctx context.Context, id string, delta int) error
	LogOutfitWear(ctx context.Context, input LogWearInput) (model.WearRecord, error)
	ListWearRecords(ctx context.Context) ([]model.WearRecord, error)

	// Bookmarks
	ToggleBookmark(ctx context.Context, id string) error
	ListBookmarks(ctx context.Context) ([]string, error)

	// Snapshot returns read-only copies of items and wear records for the
	// insights and suggestion engines.
	Snapshot(ctx context.Context) ([]model.ClothingItem, []model.WearRecord)

	// SeedDemoData replaces the wardrobe with the demo dataset.
	SeedDemoData(ctx context.Context) error

	// LastError reports the most recent best-effort persistence failure,
	// nil when the last write succeeded.
	LastError() error
}
