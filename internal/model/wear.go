package model

import "time"

// WearRecord captures one "this outfit was worn" event. OutfitItems keeps the
// item ids verbatim even if an item is deleted later; readers resolve ids
// defensively and drop the ones that no longer exist.
type WearRecord struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	OutfitItems []string        `json:"outfitItems"`
	Mood        string          `json:"mood"`
	Weather     WeatherSnapshot `json:"weather"`
}
