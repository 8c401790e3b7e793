package http

import (
	"wardrobe-ai/internal/model"
	"wardrobe-ai/internal/suggest"
)

type createReq struct {
	MoodID  string                 `json:"mood_id"`
	Weather *model.WeatherSnapshot `json:"weather"`
}

func (req createReq) toInput() suggest.CreateInput {
	return suggest.CreateInput{
		MoodID:  req.MoodID,
		Weather: req.Weather,
	}
}

type wearReq struct {
	SuggestionID string `json:"suggestion_id" binding:"required"`
}

type sessionResp struct {
	ID          string                `json:"id"`
	State       string                `json:"state"`
	MoodID      string                `json:"mood_id"`
	Weather     model.WeatherSnapshot `json:"weather"`
	Suggestions []model.Suggestion    `json:"suggestions"`
	Error       string                `json:"error,omitempty"`
}

func newSessionResp(s suggest.Session) sessionResp {
	return sessionResp{
		ID:          s.ID,
		State:       string(s.State),
		MoodID:      s.MoodID,
		Weather:     s.Weather,
		Suggestions: s.Suggestions,
		Error:       s.Error,
	}
}
