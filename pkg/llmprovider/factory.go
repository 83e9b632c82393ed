package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"nlp-task-calendar/config"
	"nlp-task-calendar/pkg/log"
	"nlp-task-calendar/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// A provider that fails to initialize is skipped and logged.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, err.Error())
			if logger != nil {
				logger.Warnf(ctx, "llmprovider.InitializeProviders: skipping %s (priority %d): %v", p.Name, p.Priority, err)
			}
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// ManagerConfig converts the string durations of cfg.
func ManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	var err error
	if cfg.RetryDelay != "" {
		if out.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if out.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	if out.RetryAttempts <= 0 {
		out.RetryAttempts = 1
	}
	return out, nil
}

// createProvider builds an OpenAI-compatible provider. Known vendor names
// get their base URL filled in.
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	name := strings.ToLower(cfg.Name)
	baseURL := cfg.BaseURL
	if baseURL == "" {
		known, ok := openai.KnownBaseURLs[name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %s: base_url is required", cfg.Name)
		}
		baseURL = known
	}

	timeout := openai.DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout %q: %w", cfg.Name, cfg.Timeout, err)
		}
		timeout = d
	}

	client, err := openai.New(openai.Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewOpenAIAdapter(name, client), nil
}
