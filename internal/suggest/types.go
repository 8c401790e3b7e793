package suggest

import (
	"time"

	"wardrobe-ai/internal/model"
)

// State is the lifecycle of a suggestion session.
type State string

const (
	StateIdle          State = "idle"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateEmptyWardrobe State = "empty_wardrobe"
	StateError         State = "error"
	StateWorn          State = "worn"
)

// Session is one recommendation round. Worn is terminal: once an outfit is
// committed to the wear ledger the session accepts no further transitions.
type Session struct {
	ID          string                `json:"id"`
	State       State                 `json:"state"`
	MoodID      string                `json:"moodId"`
	Weather     model.WeatherSnapshot `json:"weather"`
	Suggestions []model.Suggestion    `json:"suggestions"`
	Error       string                `json:"error,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// CreateInput starts a session. Weather is optional: when nil the current
// conditions are resolved through the weather client.
type CreateInput struct {
	MoodID  string
	Weather *model.WeatherSnapshot
}

// WearInput commits one suggestion of a ready session.
type WearInput struct {
	SessionID    string
	SuggestionID string
}
