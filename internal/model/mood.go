package model

// FashionMood is a named style aesthetic used to bias outfit selection.
// The catalog is static; the core never mutates it.
type FashionMood struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ColorPalette    []string `json:"colorPalette"`
	PreviewImageURL string   `json:"previewImageUrl"`
	Tags            []string `json:"tags"`
}
