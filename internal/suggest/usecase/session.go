package usecase

import (
	"context"
	"fmt"
	"time"

	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/suggest"
	"wardrobe-ai/internal/wardrobe"
	"wardrobe-ai/pkg/moods"
	"wardrobe-ai/pkg/weather"
)

// Create starts a session and runs the first generation. Unknown mood ids
// fall back to the default mood rather than failing the session.
func (uc *implUseCase) Create(ctx context.Context, input suggest.CreateInput) (suggest.Session, error) {
	now := uc.nowFunc()

	wx := uc.resolveWeather(ctx, input.Weather)
	moodID := input.MoodID
	if _, ok := moods.ByID(moodID); !ok {
		moodID = moods.Default().ID
	}

	entry := &sessionEntry{
		session: suggest.Session{
			ID:        uc.newID(),
			State:     suggest.StateIdle,
			MoodID:    moodID,
			Weather:   wx,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	uc.sessions.Add(entry.session.ID, entry)

	uc.generate(ctx, entry)
	return snapshotSession(entry), nil
}

// Get returns the session's current state.
func (uc *implUseCase) Get(ctx context.Context, id string) (suggest.Session, error) {
	entry, ok := uc.sessions.Get(id)
	if !ok {
		return suggest.Session{}, suggest.ErrSessionNotFound
	}
	return snapshotSession(entry), nil
}

// Regenerate reruns the strategy. Allowed from ready, empty_wardrobe and
// error; loading and worn sessions reject it.
func (uc *implUseCase) Regenerate(ctx context.Context, id string) (suggest.Session, error) {
	entry, ok := uc.sessions.Get(id)
	if !ok {
		return suggest.Session{}, suggest.ErrSessionNotFound
	}

	entry.mu.Lock()
	switch entry.session.State {
	case suggest.StateReady, suggest.StateEmptyWardrobe, suggest.StateError:
	default:
		state := entry.session.State
		entry.mu.Unlock()
		uc.l.Warnf(ctx, "suggest.Regenerate: rejected from state %s", state)
		return snapshotSession(entry), suggest.ErrInvalidTransition
	}
	entry.mu.Unlock()

	uc.generate(ctx, entry)
	return snapshotSession(entry), nil
}

// Wear commits one suggestion through the wear ledger and moves the session
// to its terminal state.
func (uc *implUseCase) Wear(ctx context.Context, input suggest.WearInput) (suggest.Session, error) {
	entry, ok := uc.sessions.Get(input.SessionID)
	if !ok {
		return suggest.Session{}, suggest.ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.session.State != suggest.StateReady {
		return entry.session, suggest.ErrInvalidTransition
	}

	var itemIDs []string
	found := false
	for _, s := range entry.session.Suggestions {
		if s.ID != input.SuggestionID {
			continue
		}
		found = true
		for _, item := range s.Items {
			itemIDs = append(itemIDs, item.ID)
		}
		break
	}
	if !found {
		return entry.session, suggest.ErrSuggestionNotFound
	}

	if _, err := uc.ledger.LogOutfitWear(ctx, wardrobe.LogWearInput{
		ItemIDs: itemIDs,
		MoodID:  entry.session.MoodID,
		Weather: entry.session.Weather,
	}); err != nil {
		uc.l.Errorf(ctx, "suggest.Wear: ledger commit: %v", err)
		return entry.session, err
	}

	entry.generation++
	entry.session.State = suggest.StateWorn
	entry.session.UpdatedAt = uc.nowFunc()
	return entry.session, nil
}

// generate walks the session through loading and commits the strategy result
// only when no newer generation started meanwhile.
func (uc *implUseCase) generate(ctx context.Context, entry *sessionEntry) {
	entry.mu.Lock()
	entry.generation++
	gen := entry.generation
	entry.session.State = suggest.StateLoading
	entry.session.UpdatedAt = uc.nowFunc()
	moodID := entry.session.MoodID
	wx := entry.session.Weather
	entry.mu.Unlock()

	items, _ := uc.ledger.Snapshot(ctx)
	mood, ok := moods.ByID(moodID)
	if !ok {
		mood = moods.Default()
	}
	now := uc.nowFunc()

	var suggestions []model.Suggestion
	var strategyErr error
	if len(items) > 0 {
		suggestions, strategyErr = uc.runStrategy(uc.strategy, items, mood, wx, now)
		if strategyErr != nil && uc.strategy != uc.fallback {
			uc.l.Warnf(ctx, "suggest.generate: primary strategy failed, degrading to random sampling: %v", strategyErr)
			suggestions, strategyErr = uc.runStrategy(uc.fallback, items, mood, wx, now)
		}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.generation != gen {
		uc.l.Debugf(ctx, "suggest.generate: discarding superseded generation %d", gen)
		return
	}

	entry.session.UpdatedAt = now
	switch {
	case len(items) == 0:
		entry.session.State = suggest.StateEmptyWardrobe
		entry.session.Suggestions = nil
	case strategyErr != nil:
		entry.session.State = suggest.StateError
		entry.session.Suggestions = nil
		entry.session.Error = strategyErr.Error()
	default:
		entry.session.State = suggest.StateReady
		entry.session.Suggestions = suggestions
		entry.session.Error = ""
	}
}

// runStrategy shields the session from a misbehaving strategy: a panic
// becomes an error instead of taking down the request.
func (uc *implUseCase) runStrategy(strategy suggest.Strategy, items []model.ClothingItem, mood model.FashionMood, wx model.WeatherSnapshot, now time.Time) (suggestions []model.Suggestion, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("outfit strategy panicked: %v", r)
		}
	}()
	return strategy.Assemble(items, mood, wx, now), nil
}

// resolveWeather prefers caller-supplied conditions, then the live client,
// then the fixed default snapshot.
func (uc *implUseCase) resolveWeather(ctx context.Context, supplied *model.WeatherSnapshot) model.WeatherSnapshot {
	if supplied != nil {
		return *supplied
	}
	if uc.weather == nil {
		return weather.DefaultSnapshot(uc.defaultCity)
	}
	wx, err := uc.weather.GetByCity(ctx, uc.defaultCity)
	if err != nil {
		uc.l.Warnf(ctx, "suggest.resolveWeather: %v", err)
	}
	return wx
}

func snapshotSession(entry *sessionEntry) suggest.Session {
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.session
}
