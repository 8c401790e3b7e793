package insights

import (
	"time"

	"wardrobe-ai/internal/model"
)

// NudgeType classifies behavioral suggestions.
type NudgeType string

const (
	NudgeFrequency NudgeType = "frequency"
	NudgeNeglect   NudgeType = "neglect"
	NudgeColor     NudgeType = "color"
	NudgeVariety   NudgeType = "variety"
)

// Nudge is one actionable behavioral suggestion. The engine supplies enough
// for the UI to render a link; it performs no navigation itself.
type Nudge struct {
	Type        NudgeType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ActionLabel string    `json:"action_label"`
}

// ColorCount aggregates wear (or item) counts per color hex. Color carries
// the display name of the first item found for that hex.
type ColorCount struct {
	Color string `json:"color"`
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// ItemWearCount pairs an item with its wear counter.
type ItemWearCount struct {
	Item  model.ClothingItem `json:"item"`
	Count int                `json:"count"`
}

// DayCount is one weekday bucket of the weekly wear pattern.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Overview is the full insights dashboard payload.
type Overview struct {
	MostWornColors    []ColorCount    `json:"most_worn_colors"`
	Palette           []ColorCount    `json:"palette"`
	MostWornItems     []ItemWearCount `json:"most_worn_items"`
	LeastWornItems    []ItemWearCount `json:"least_worn_items"`
	Nudges            []Nudge         `json:"nudges"`
	WeeklyWearPattern []DayCount      `json:"weekly_wear_pattern"`
}

// TimelineDay is one day of the weekly outfit timeline: the distinct items
// worn that day (capped to a small preview), with "today" marked.
type TimelineDay struct {
	Date        time.Time            `json:"date"`
	DayLabel    string               `json:"day_label"`
	DayNum      int                  `json:"day_num"`
	IsToday     bool                 `json:"is_today"`
	RecordCount int                  `json:"record_count"`
	Items       []model.ClothingItem `json:"items"`
}
