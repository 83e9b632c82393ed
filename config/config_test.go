package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: staging\n"))
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, EngineLocal, cfg.NLP.Engine)
	assert.Equal(t, 30*time.Minute, cfg.NLP.CacheTTL)
	assert.Equal(t, "UTC", cfg.NLP.Timezone)
	assert.Equal(t, "input.json", cfg.Batch.InputFile)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
	assert.Equal(t, time.Hour, cfg.GoogleCalendar.DefaultDuration)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFileLLMProviders(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "secret")
	cfg, err := LoadFile(writeConfig(t, `
nlp:
  engine: LLM
llm:
  providers:
    - name: openai
      enabled: true
      priority: 1
      api_key: ${TEST_LLM_KEY}
      model: gpt-4o-mini
`))
	require.NoError(t, err)
	assert.Equal(t, EngineLLM, cfg.NLP.Engine)
	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "secret", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, 3, cfg.LLM.RetryAttempts)
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"llm without providers", "nlp:\n  engine: llm\n"},
		{"unknown engine", "nlp:\n  engine: spacy\n"},
		{"bad timezone", "nlp:\n  timezone: Mars/Olympus\n"},
		{"no workers", "batch:\n  workers: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit missing file is an error")
}

func TestValidateLLMConfig(t *testing.T) {
	ok := LLMConfig{Providers: []ProviderConfig{{Name: "a", Enabled: true, Priority: 1, Model: "m"}}}
	assert.NoError(t, validateLLMConfig(&ok))

	dup := LLMConfig{Providers: []ProviderConfig{
		{Name: "a", Enabled: true, Priority: 1, Model: "m"},
		{Name: "b", Enabled: true, Priority: 1, Model: "m"},
	}}
	assert.Error(t, validateLLMConfig(&dup))

	disabled := LLMConfig{Providers: []ProviderConfig{{Name: "a", Priority: 1, Model: "m"}}}
	assert.Error(t, validateLLMConfig(&disabled))
}
