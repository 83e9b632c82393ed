package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger records Infof and Warnf messages.
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, arg...))
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(name string) *Response {
	return &Response{
		Text:         "hello from " + name,
		ProviderName: name,
		ModelName:    name + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

var helloRequest = &Request{Prompt: "Hello"}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn messages, got: %d / %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn messages, got: %d / %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest)
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected both providers called 2 times, got: %d / %d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	manager := NewManager([]Provider{primary, secondary}, &Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest); err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest)
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_ZeroRetryAttemptsStillCalls(t *testing.T) {
	primary := &mockProvider{name: "primary", response: &Response{ProviderName: "primary"}}
	manager := NewManager([]Provider{primary}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected one call, got: %d", primary.callCount)
	}
}

func TestGenerateContent_CancelledContext(t *testing.T) {
	primary := &mockProvider{name: "primary", response: okResponse("primary")}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := manager.GenerateContent(ctx, helloRequest); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("Expected no provider call, got: %d", primary.callCount)
	}
}

func TestProviders(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "a"}, &mockProvider{name: "b"}}, nil, &mockLogger{})
	got := manager.Providers()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected [a b], got: %v", got)
	}
}
