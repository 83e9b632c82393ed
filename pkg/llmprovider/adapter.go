package llmprovider

import (
	"context"

	"nlp-task-calendar/pkg/openai"
)

// OpenAIAdapter adapts an OpenAI-compatible client to Provider. The name
// distinguishes vendors that share the protocol.
type OpenAIAdapter struct {
	name   string
	client openai.IClient
}

// NewOpenAIAdapter creates a new adapter
func NewOpenAIAdapter(name string, client openai.IClient) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	chatReq := &openai.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSON,
	}
	if req.System != "" {
		chatReq.Messages = append(chatReq.Messages, openai.Message{Role: "system", Content: req.System})
	}
	chatReq.Messages = append(chatReq.Messages, openai.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.Complete(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Text:         resp.Content,
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
