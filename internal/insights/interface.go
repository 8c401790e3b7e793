package insights

import (
	"context"

	"wardrobe-ai/internal/model"
)

// SnapshotSource supplies the wardrobe state the engine derives from. The
// engine is a read-only consumer; it never mutates what it receives.
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]model.ClothingItem, []model.WearRecord)
}

// UseCase derives analytics on demand. Derivations are pure: the same
// snapshot and clock always produce the same result, and empty state yields
// well-formed empty results, never errors.
type UseCase interface {
	Overview(ctx context.Context) (Overview, error)
	Timeline(ctx context.Context) ([]TimelineDay, error)
}
