package usecase

import (
	"time"

	"wardrobe-ai/internal/insights"
	"wardrobe-ai/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	source  insights.SnapshotSource
	nowFunc func() time.Time
}

// New creates the insights UseCase over a wardrobe snapshot source.
func New(l log.Logger, source insights.SnapshotSource) *implUseCase {
	return &implUseCase{
		l:       l,
		source:  source,
		nowFunc: time.Now,
	}
}

// startOfWeek returns midnight on the Monday of t's calendar week.
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports calendar-date equality.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
