package usecase

import "context"

// ToggleBookmark adds or removes an item id from the bookmark list. Unknown
// item ids are a no-op.
func (uc *implUseCase) ToggleBookmark(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findIndex(id) < 0 {
		return nil
	}

	for i, existing := range uc.bookmarks {
		if existing == id {
			uc.bookmarks = append(uc.bookmarks[:i], uc.bookmarks[i+1:]...)
			uc.persistBookmarks(ctx)
			return nil
		}
	}

	uc.bookmarks = append(uc.bookmarks, id)
	uc.persistBookmarks(ctx)
	return nil
}

// ListBookmarks returns bookmarked item ids, filtering ids whose items have
// been deleted since.
func (uc *implUseCase) ListBookmarks(ctx context.Context) ([]string, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	ids := make([]string, 0, len(uc.bookmarks))
	for _, id := range uc.bookmarks {
		if uc.findIndex(id) >= 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
