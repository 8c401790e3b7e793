package wardrobe

import "errors"

var (
	ErrItemNotFound   = errors.New("clothing item not found")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrEmptyOutfit    = errors.New("an outfit needs at least one item")
)
