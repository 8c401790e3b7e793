package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/wardrobe/repository"
	"wardrobe-ai/pkg/log"
)

// implUseCase owns the in-memory wardrobe state. One mutex serializes
// mutations so every mutation runs to completion before the next one — the
// in-memory state is authoritative; the repository holds best-effort
// snapshots written inside the same critical section.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository

	mu        sync.RWMutex
	items     []model.ClothingItem
	records   []model.WearRecord
	bookmarks []string
	lastErr   error

	nowFunc func() time.Time
	newID   func() string
}

// New creates the wardrobe UseCase and rehydrates state from the repository.
// Load failures are logged and leave the affected collection empty; the
// service still starts.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	uc := &implUseCase{
		l:       l,
		repo:    repo,
		nowFunc: time.Now,
		newID:   uuid.NewString,
	}

	ctx := context.Background()

	items, err := repo.LoadItems(ctx)
	if err != nil {
		l.Errorf(ctx, "wardrobe: failed to load items, starting empty: %v", err)
	}
	uc.items = items

	records, err := repo.LoadRecords(ctx)
	if err != nil {
		l.Errorf(ctx, "wardrobe: failed to load wear records, starting empty: %v", err)
	}
	uc.records = records

	bookmarks, err := repo.LoadBookmarks(ctx)
	if err != nil {
		l.Errorf(ctx, "wardrobe: failed to load bookmarks, starting empty: %v", err)
	}
	uc.bookmarks = bookmarks

	return uc
}

// LastError reports the most recent best-effort persistence failure.
func (uc *implUseCase) LastError() error {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.lastErr
}

// persistItems writes the item snapshot. Failures are recorded, never
// propagated: memory stays authoritative for the session.
func (uc *implUseCase) persistItems(ctx context.Context) {
	if err := uc.repo.SaveItems(ctx, uc.items); err != nil {
		uc.l.Errorf(ctx, "wardrobe: best-effort item save failed: %v", err)
		uc.lastErr = err
		return
	}
	uc.lastErr = nil
}

func (uc *implUseCase) persistRecords(ctx context.Context) {
	if err := uc.repo.SaveRecords(ctx, uc.records); err != nil {
		uc.l.Errorf(ctx, "wardrobe: best-effort record save failed: %v", err)
		uc.lastErr = err
		return
	}
	uc.lastErr = nil
}

func (uc *implUseCase) persistBookmarks(ctx context.Context) {
	if err := uc.repo.SaveBookmarks(ctx, uc.bookmarks); err != nil {
		uc.l.Errorf(ctx, "wardrobe: best-effort bookmark save failed: %v", err)
		uc.lastErr = err
		return
	}
	uc.lastErr = nil
}

func (uc *implUseCase) findIndex(id string) int {
	for i := range uc.items {
		if uc.items[i].ID == id {
			return i
		}
	}
	return -1
}
