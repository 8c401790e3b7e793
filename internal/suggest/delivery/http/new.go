package http

import (
	"wardrobe-ai/internal/suggest"
	"wardrobe-ai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc suggest.UseCase
}

// New creates the HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggest.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
