package usecase

import (
	"context"
	"fmt"
	"time"

	"wardrobe-ai/internal/model"
)

// Mock logger for testing
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

// Mock repository: in-memory snapshots with optional failure injection.
type mockRepository struct {
	items     []model.ClothingItem
	records   []model.WearRecord
	bookmarks []string

	loadItemsErr error
	saveErr      error

	saveItemCalls int
}

func (m *mockRepository) LoadItems(ctx context.Context) ([]model.ClothingItem, error) {
	return m.items, m.loadItemsErr
}

func (m *mockRepository) SaveItems(ctx context.Context, items []model.ClothingItem) error {
	m.saveItemCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items = items
	return nil
}

func (m *mockRepository) LoadRecords(ctx context.Context) ([]model.WearRecord, error) {
	return m.records, nil
}

func (m *mockRepository) SaveRecords(ctx context.Context, records []model.WearRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = records
	return nil
}

func (m *mockRepository) LoadBookmarks(ctx context.Context) ([]string, error) {
	return m.bookmarks, nil
}

func (m *mockRepository) SaveBookmarks(ctx context.Context, ids []string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.bookmarks = ids
	return nil
}

func (m *mockRepository) Close() error { return nil }

// newTestUseCase wires a usecase with a fixed clock and sequential ids.
func newTestUseCase(repo *mockRepository, now time.Time) *implUseCase {
	uc := New(&mockLogger{}, repo)
	uc.nowFunc = func() time.Time { return now }
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return uc
}

func testItem(id string, category model.Category, wearFrequency int) model.ClothingItem {
	return model.ClothingItem{
		ID:            id,
		Category:      category,
		Subcategory:   "T-Shirt",
		Color:         "Blue",
		ColorHex:      "#0000FF",
		Season:        []model.Season{model.SeasonSummer},
		WearFrequency: wearFrequency,
		DateAdded:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
