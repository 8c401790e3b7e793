package vision

import "time"

const (
	// DefaultModel is the default vision model
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// Low temperature: we want deterministic JSON, not creativity.
	analysisTemperature = 0.2
	analysisMaxTokens   = 1024
)

// analysisPrompt instructs the model to return exactly one JSON object.
const analysisPrompt = `You are a fashion catalog assistant. Look at the clothing item in the image and respond with a single JSON object, no prose, using exactly these keys:
{
  "category": one of "tops","bottoms","outerwear","dresses","shoes","accessories","bags",
  "subcategory": short specific type, e.g. "Denim Jacket",
  "color": human-readable dominant color name,
  "colorHex": hex code of the dominant color, e.g. "#1a1a2e",
  "pattern": e.g. "Solid","Striped","Floral",
  "season": array with any of "spring","summer","fall","winter",
  "aiTags": array of 3-5 short descriptive style tags
}`
