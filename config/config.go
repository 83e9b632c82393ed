package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// NLP engine names accepted in nlp.engine.
const (
	EngineLocal = "local"
	EngineLLM   = "llm"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Extraction
	NLP   NLPConfig
	Batch BatchConfig

	// Calendar
	GoogleCalendar GoogleCalendarConfig

	// LLM Provider Abstraction, used when NLP.Engine is "llm"
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

type NLPConfig struct {
	Engine        string
	GazetteerPath string
	CacheSize     int
	CacheTTL      time.Duration
	Timezone      string
}

type BatchConfig struct {
	InputFile  string
	OutputFile string
	Workers    int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	AttendeeDomain  string
	DefaultStart    string
	DefaultDuration time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for the entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Extraction
	cfg.NLP.Engine = strings.ToLower(v.GetString("nlp.engine"))
	cfg.NLP.GazetteerPath = v.GetString("nlp.gazetteer_path")
	cfg.NLP.CacheSize = v.GetInt("nlp.cache_size")
	cfg.NLP.CacheTTL = v.GetDuration("nlp.cache_ttl")
	cfg.NLP.Timezone = v.GetString("nlp.timezone")

	cfg.Batch.InputFile = v.GetString("batch.input_file")
	cfg.Batch.OutputFile = v.GetString("batch.output_file")
	cfg.Batch.Workers = v.GetInt("batch.workers")

	// Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.AttendeeDomain = v.GetString("google_calendar.attendee_domain")
	cfg.GoogleCalendar.DefaultStart = v.GetString("google_calendar.default_start")
	cfg.GoogleCalendar.DefaultDuration = v.GetDuration("google_calendar.default_duration")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("nlp.engine", EngineLocal)
	v.SetDefault("nlp.cache_size", 1024)
	v.SetDefault("nlp.cache_ttl", "30m")
	v.SetDefault("nlp.timezone", "UTC")

	v.SetDefault("batch.input_file", "input.json")
	v.SetDefault("batch.output_file", "output.json")
	v.SetDefault("batch.workers", 4)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.attendee_domain", "example.com")
	v.SetDefault("google_calendar.default_start", "09:00")
	v.SetDefault("google_calendar.default_duration", "1h")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

func (cfg *Config) validate() error {
	switch cfg.NLP.Engine {
	case EngineLocal:
	case EngineLLM:
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return fmt.Errorf("nlp.engine=llm: %w", err)
		}
	default:
		return fmt.Errorf("unknown nlp.engine %q (want %s or %s)", cfg.NLP.Engine, EngineLocal, EngineLLM)
	}
	if cfg.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive, got %d", cfg.Batch.Workers)
	}
	if _, err := time.LoadLocation(cfg.NLP.Timezone); err != nil {
		return fmt.Errorf("invalid nlp.timezone %q: %w", cfg.NLP.Timezone, err)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
