package http

import (
	"wardrobe-ai/internal/insights"
	"wardrobe-ai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc insights.UseCase
}

// New creates the HTTP handler for the insights domain.
func New(l log.Logger, uc insights.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
