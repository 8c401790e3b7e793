package model

// Suggestion is one proposed outfit. Ephemeral: generated on demand and only
// the chosen outfit survives, as a WearRecord.
type Suggestion struct {
	ID           string         `json:"id"`
	Items        []ClothingItem `json:"items"`
	Mood         FashionMood    `json:"mood"`
	WeatherMatch int            `json:"weatherMatch"`
	Explanation  string         `json:"explanation"`
	WearScore    int            `json:"wearScore"`
}
