package llmprovider

import "context"

// Provider is one LLM backend.
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "deepseek", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a single-turn generation request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
	// JSON asks the provider to reply with one JSON object.
	JSON bool
}

// Response is a normalized generation response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
