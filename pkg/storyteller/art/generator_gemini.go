package art

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const DefaultGeminiBaseUrl = "https://generativelanguage.googleapis.com"

// GeminiGenerator calls the Imagen predict endpoint of the Generative
// Language API. The API returns base64-encoded PNG bytes, which are
// exposed as data URLs so the UI can render them without another fetch.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseUrl string
	client  *http.Client
}

var _ ImageGenerator = (*GeminiGenerator)(nil)

type geminiPredictRequest struct {
	Instances  geminiInstance   `json:"instances"`
	Parameters geminiParameters `json:"parameters"`
}

type geminiInstance struct {
	Prompt string `json:"prompt"`
}

type geminiParameters struct {
	SampleCount int `json:"sampleCount"`
}

type geminiPredictResponse struct {
	Predictions []geminiPrediction `json:"predictions"`
}

type geminiPrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

func NewGeminiGenerator(apiKey string, model string, baseUrl string, client *http.Client) *GeminiGenerator {
	if baseUrl == "" {
		baseUrl = DefaultGeminiBaseUrl
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseUrl: baseUrl,
		client:  client,
	}
}

func (g *GeminiGenerator) GenerateUrls(ctx context.Context, prompt string, count int) ([]string, error) {
	body, err := json.Marshal(geminiPredictRequest{
		Instances:  geminiInstance{Prompt: prompt},
		Parameters: geminiParameters{SampleCount: count},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predict?key=%s", g.baseUrl, g.model, url.QueryEscape(g.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform predict request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("predict request failed with status %d: %s", resp.StatusCode, respBody)
	}

	var predictResponse geminiPredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResponse); err != nil {
		return nil, fmt.Errorf("failed to decode predict response: %w", err)
	}

	if len(predictResponse.Predictions) == 0 {
		return nil, fmt.Errorf("no image data returned")
	}

	urls := make([]string, 0, len(predictResponse.Predictions))
	for _, prediction := range predictResponse.Predictions {
		if prediction.BytesBase64Encoded == "" {
			return nil, fmt.Errorf("prediction is missing image bytes")
		}
		urls = append(urls, "data:image/png;base64,"+prediction.BytesBase64Encoded)
	}

	return urls, nil
}
