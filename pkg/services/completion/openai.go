package completion

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

// OpenAIProvider talks to an OpenAI-compatible chat-completion endpoint.
type OpenAIProvider struct {
	client *openai.Client
}

func NewOpenAIProvider(baseURL, apiKey string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(cfg)}
}

func (p *OpenAIProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", &domain.GenerationError{Model: model, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &domain.GenerationError{Model: model, Err: fmt.Errorf("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}
