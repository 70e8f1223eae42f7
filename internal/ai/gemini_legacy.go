package ai

import (
	"context"
	"fmt"
	"strings"

	legacy "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LegacyGenerator implements Generator on the older generative-ai-go SDK.
// That SDK has no search tool, so it only answers from model knowledge.
type LegacyGenerator struct {
	client *legacy.Client
	model  string
}

func NewLegacyGenerator(ctx context.Context, apiKey, model string) (*LegacyGenerator, error) {
	client, err := legacy.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &LegacyGenerator{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (g *LegacyGenerator) Close() error {
	return g.client.Close()
}

func (g *LegacyGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	if req.Search {
		return Response{}, ErrSearchUnsupported
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(req.Temperature)

	resp, err := model.GenerateContent(ctx, legacy.Text(req.Prompt))
	if err != nil {
		return Response{}, fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Response{}, fmt.Errorf("no response candidates from Gemini")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(legacy.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return Response{Text: text.String()}, nil
}
