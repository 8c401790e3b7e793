package sqlitekv

import (
	"context"
	"database/sql"
	"encoding/json"

	"wardrobe-ai/internal/model"
	repo "wardrobe-ai/internal/wardrobe/repository"
)

// LoadItems rehydrates the clothing collection. Elements that fail to decode
// (bad timestamps, truncated JSON) are skipped with a warning; the rest of
// the collection loads intact.
func (r *implRepository) LoadItems(ctx context.Context) ([]model.ClothingItem, error) {
	raws, err := r.loadRawList(ctx, keyClothes)
	if err != nil {
		return nil, err
	}

	items := make([]model.ClothingItem, 0, len(raws))
	for i, raw := range raws {
		var item model.ClothingItem
		if err := json.Unmarshal(raw, &item); err != nil {
			r.l.Warnf(ctx, "sqlitekv.LoadItems: skipping element %d: %v", i, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// SaveItems persists the full clothing collection snapshot.
func (r *implRepository) SaveItems(ctx context.Context, items []model.ClothingItem) error {
	return r.saveJSON(ctx, keyClothes, items, "SaveItems")
}

// LoadRecords rehydrates the wear-record history, tolerating bad elements.
func (r *implRepository) LoadRecords(ctx context.Context) ([]model.WearRecord, error) {
	raws, err := r.loadRawList(ctx, keyOutfits)
	if err != nil {
		return nil, err
	}

	records := make([]model.WearRecord, 0, len(raws))
	for i, raw := range raws {
		var record model.WearRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			r.l.Warnf(ctx, "sqlitekv.LoadRecords: skipping element %d: %v", i, err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// SaveRecords persists the full wear-record snapshot.
func (r *implRepository) SaveRecords(ctx context.Context, records []model.WearRecord) error {
	return r.saveJSON(ctx, keyOutfits, records, "SaveRecords")
}

// LoadBookmarks returns the bookmarked item id list.
func (r *implRepository) LoadBookmarks(ctx context.Context) ([]string, error) {
	value, err := r.loadValue(ctx, keyBookmarks)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal(value, &ids); err != nil {
		r.l.Warnf(ctx, "sqlitekv.LoadBookmarks: corrupt value, starting empty: %v", err)
		return nil, nil
	}
	return ids, nil
}

// SaveBookmarks persists the bookmarked item id list.
func (r *implRepository) SaveBookmarks(ctx context.Context, ids []string) error {
	return r.saveJSON(ctx, keyBookmarks, ids, "SaveBookmarks")
}

// loadRawList reads a key and splits the stored JSON array into raw
// elements so callers can decode each one defensively.
func (r *implRepository) loadRawList(ctx context.Context, key string) ([]json.RawMessage, error) {
	value, err := r.loadValue(ctx, key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(value, &raws); err != nil {
		r.l.Errorf(ctx, "sqlitekv.loadRawList: key %q holds corrupt JSON: %v", key, err)
		return nil, repo.ErrFailedToLoad
	}
	return raws, nil
}

func (r *implRepository) loadValue(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil // never written yet
	}
	if err != nil {
		r.l.Errorf(ctx, "sqlitekv.loadValue %q: %v", key, err)
		return nil, repo.ErrFailedToLoad
	}
	return value, nil
}

func (r *implRepository) saveJSON(ctx context.Context, key string, v any, method string) error {
	value, err := json.Marshal(v)
	if err != nil {
		r.l.Errorf(ctx, "sqlitekv.%s marshal: %v", method, err)
		return repo.ErrFailedToSave
	}

	const query = `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		r.l.Errorf(ctx, "sqlitekv.%s: %v", method, err)
		return repo.ErrFailedToSave
	}
	return nil
}
