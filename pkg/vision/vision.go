package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

type visionImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// newVisionImpl creates a new vision implementation
func newVisionImpl(cfg Config) *visionImpl {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &visionImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(2), 4),
	}
}

// AnalyzeImage sends the image to the model and maps the response into
// validated clothing attributes. Transport errors are returned; malformed
// model output degrades to the fallback attributes with Fallback set.
func (v *visionImpl) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (AnalyzeResult, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	req := apiRequest{
		Contents: []apiContent{{
			Parts: []apiPart{
				{Text: analysisPrompt},
				{InlineData: &apiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: &apiGenerationConfig{
			Temperature:     analysisTemperature,
			MaxOutputTokens: analysisMaxTokens,
		},
	}

	resp, err := v.callAPI(ctx, req)
	if err != nil {
		return AnalyzeResult{}, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return AnalyzeResult{Attributes: fallbackAttributes(), Fallback: true}, nil
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	var raw rawAttributes
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(text)), &raw); err != nil {
		// Model returned prose or broken JSON. Degrade, never propagate.
		return AnalyzeResult{Attributes: fallbackAttributes(), Fallback: true}, nil
	}

	attrs, usedFallback := validateAttributes(raw)
	return AnalyzeResult{Attributes: attrs, Fallback: usedFallback}, nil
}

// Model returns the model being used
func (v *visionImpl) Model() string {
	return v.model
}

// callAPI sends a request to the generative language API
func (v *visionImpl) callAPI(ctx context.Context, req apiRequest) (*apiResponse, error) {
	if err := v.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", v.apiURL, v.model, v.apiKey)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("vision: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("vision: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("vision: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("vision: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("vision: failed to decode response: %w", err)
	}
	return &result, nil
}
