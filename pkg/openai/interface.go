package openai

import "context"

// IClient is a chat completions client.
type IClient interface {
	Complete(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
