package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	config "github.com/studyez/studyez_backend/configs"
)

// AIClient talks to an OpenAI-compatible chat-completions endpoint. Its output
// is untrusted text; callers are responsible for parsing it defensively.
type AIClient struct {
	http   *resty.Client
	apiKey string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewAIClient(apiURL, apiKey string) *AIClient {
	return &AIClient{
		http: resty.New().
			SetBaseURL(apiURL).
			SetTimeout(120 * time.Second),
		apiKey: apiKey,
	}
}

// NewAIClientFromEnv builds the client from AI_API_URL / AI_API_KEY.
func NewAIClientFromEnv() *AIClient {
	return NewAIClient(config.Config("AI_API_URL"), config.Config("AI_API_KEY"))
}

func (c *AIClient) IsAvailable() bool {
	return c.apiKey != ""
}

// Chat sends one chat-completions request against the given model or
// deployment and returns the raw assistant text. No retries: transient
// failures surface to the caller as-is.
func (c *AIClient) Chat(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	if !c.IsAvailable() {
		return "", fmt.Errorf("AI generation is not configured")
	}

	req := chatRequest{
		Model:          model,
		Messages:       messages,
		Temperature:    1,
		MaxTokens:      4000,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(req).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	if out.Error != nil {
		return "", fmt.Errorf("API error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("empty response from AI")
	}

	return cleanJSONContent(out.Choices[0].Message.Content), nil
}

// cleanJSONContent strips markdown code fences some models wrap around JSON.
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
