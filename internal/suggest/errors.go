package suggest

import "errors"

var (
	ErrSessionNotFound    = errors.New("suggestion session not found")
	ErrSuggestionNotFound = errors.New("suggestion not found in session")
	ErrInvalidTransition  = errors.New("invalid session state transition")
)
