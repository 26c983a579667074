package art

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAiGenerator struct {
	apiKey string
	model  string
	client *openai.Client
}

var _ ImageGenerator = (*OpenAiGenerator)(nil)

func NewOpenAiGenerator(apiKey string, model string) *OpenAiGenerator {
	client := openai.NewClient(apiKey)
	return &OpenAiGenerator{
		apiKey: apiKey,
		model:  model,
		client: client,
	}
}

func (g *OpenAiGenerator) GenerateUrls(ctx context.Context, prompt string, count int) ([]string, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              count,
		Model:          g.model,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no image data returned")
	}

	urls := make([]string, 0, len(resp.Data))
	for _, data := range resp.Data {
		urls = append(urls, data.URL)
	}

	return urls, nil
}
