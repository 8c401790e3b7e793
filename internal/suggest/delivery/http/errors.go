package http

import (
	"wardrobe-ai/internal/suggest"
	pkgErrors "wardrobe-ai/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case suggest.ErrSessionNotFound:
		return pkgErrors.NewHTTPError(404, "suggestion session not found")
	case suggest.ErrSuggestionNotFound:
		return pkgErrors.NewHTTPError(404, "suggestion not found")
	case suggest.ErrInvalidTransition:
		return pkgErrors.NewHTTPError(409, "session does not allow this action")
	default:
		return err
	}
}
