package services

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// OpenRouterClient wraps the OpenAI-compatible model used by the step planner
// and the materials assistant.
type OpenRouterClient struct {
	Chat llms.Model
}

func NewOpenRouterClient(apiKey, apiEndpoint, model string) (*OpenRouterClient, error) {
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenRouter client: %w", err)
	}

	return &OpenRouterClient{
		Chat: chat,
	}, nil
}

// extractJSONBlock returns the payload between [[JSON_START]] and
// [[JSON_END]] markers, or the whole trimmed content when the model answered
// with bare JSON.
func extractJSONBlock(content string) string {
	const startMarker = "[[JSON_START]]"
	const endMarker = "[[JSON_END]]"

	start := strings.Index(content, startMarker)
	end := strings.Index(content, endMarker)
	if start >= 0 && end > start {
		return strings.TrimSpace(content[start+len(startMarker) : end])
	}
	return strings.TrimSpace(content)
}
