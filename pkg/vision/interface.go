package vision

import (
	"context"
	"fmt"

	"wardrobe-ai/internal/model"
)

// IVision defines the interface for the garment image-analysis collaborator.
// Implementations are safe for concurrent use.
type IVision interface {
	// AnalyzeImage extracts clothing attributes from an image. A malformed
	// model response never surfaces as an error: the result is tagged
	// Fallback and carries the default garment description instead.
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (AnalyzeResult, error)

	// Model returns the model being used.
	Model() string
}

// AnalyzeResult tags whether the attributes came from the model or from the
// fallback defaults.
type AnalyzeResult struct {
	Attributes model.ClothingAttributes
	Fallback   bool
}

// New creates a new vision client with the given configuration.
func New(cfg Config) (IVision, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("vision: api key is required")
	}
	return newVisionImpl(cfg), nil
}
