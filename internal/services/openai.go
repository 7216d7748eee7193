package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient is the fallback extractor: when the JSON-LD, meta and
// selector cascade all fail to find a heading, the page text goes to a
// small model instead of dropping the article on the floor.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// FallbackExtraction is the model's answer plus cost accounting
type FallbackExtraction struct {
	Heading       string  `json:"heading"`
	Subheading    string  `json:"subheading"`
	Date          string  `json:"date"`
	TokensUsed    int     `json:"tokens_used"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// gpt-4o-mini per-token pricing in USD
const (
	promptTokenCost     = 0.150 / 1_000_000
	completionTokenCost = 0.600 / 1_000_000
)

// NewOpenAIClient creates the fallback extractor. Unlike hard service
// dependencies this returns an error when OPENAI_API_KEY is unset, so
// the pipeline can run without it.
func NewOpenAIClient() (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       "gpt-4o-mini",
		temperature: 0.1,
		maxTokens:   500,
	}, nil
}

// ExtractArticleFields asks the model for heading, subheading and date
// given the article page's visible text
func (o *OpenAIClient) ExtractArticleFields(ctx context.Context, pageText, sourceURL string) (*FallbackExtraction, error) {
	if pageText == "" {
		return nil, fmt.Errorf("page text cannot be empty")
	}

	systemPrompt := "You extract news article metadata. Given the visible text of a news article page, " +
		"respond with only a JSON object of the form " +
		`{"heading": "...", "subheading": "...", "date": "..."}. ` +
		"Use empty strings for fields you cannot determine. No markdown, no commentary."

	userPrompt := fmt.Sprintf("Article URL: %s\n\nPage text:\n%s", sourceURL, pageText)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices from OpenAI")
	}

	cleaned := cleanJSONResponse(resp.Choices[0].Message.Content)

	var extraction FallbackExtraction
	if err := json.Unmarshal([]byte(cleaned), &extraction); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	extraction.TokensUsed = resp.Usage.TotalTokens
	extraction.EstimatedCost = float64(resp.Usage.PromptTokens)*promptTokenCost +
		float64(resp.Usage.CompletionTokens)*completionTokenCost

	return &extraction, nil
}

// cleanJSONResponse strips markdown code fences the model sometimes
// wraps around JSON despite instructions
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		if idx := strings.Index(content, "\n"); idx >= 0 {
			content = content[idx+1:]
		}
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	return strings.TrimSpace(content)
}
