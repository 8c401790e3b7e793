package http

import (
	"wardrobe-ai/internal/wardrobe"
	"wardrobe-ai/pkg/log"
	"wardrobe-ai/pkg/vision"
)

type handler struct {
	l      log.Logger
	uc     wardrobe.UseCase
	vision vision.IVision // nil when no API key is configured
}

// New creates the HTTP handler for the wardrobe domain.
func New(l log.Logger, uc wardrobe.UseCase, vis vision.IVision) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		vision: vis,
	}
}
