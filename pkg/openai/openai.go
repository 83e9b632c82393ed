package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to any OpenAI-compatible /chat/completions endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a client.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one chat completion request.
func (c *Client) Complete(ctx context.Context, req *Request) (*Response, error) {
	wire := wireRequest{Request: *req}
	if wire.Model == "" {
		wire.Model = c.model
	}
	if req.JSONMode {
		wire.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error.Message}
	}

	var out wireResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("openai: failed to parse response: %w", err)
	}

	result := &Response{Model: out.Model, Usage: out.Usage}
	if len(out.Choices) > 0 {
		result.Content = out.Choices[0].Message.Content
	}
	return result, nil
}

// APIError is a non-200 reply.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Message)
}
