package http

import (
	"wardrobe-ai/internal/wardrobe"
	pkgErrors "wardrobe-ai/pkg/errors"
)

var (
	errMissingID           = pkgErrors.NewHTTPError(400, "id is required")
	errAnalysisUnavailable = pkgErrors.NewHTTPError(503, "image analysis is currently unavailable")
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case wardrobe.ErrItemNotFound:
		return pkgErrors.NewHTTPError(404, "clothing item not found")
	case wardrobe.ErrInvalidPayload:
		return pkgErrors.NewHTTPError(400, "invalid payload")
	case wardrobe.ErrEmptyOutfit:
		return pkgErrors.NewHTTPError(400, "an outfit needs at least one item")
	default:
		return err
	}
}
