package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout bounds one chat completion call.
	DefaultTimeout = 60 * time.Second
)

// Base URLs of providers that speak the same chat completions protocol.
var KnownBaseURLs = map[string]string{
	"openai":   DefaultBaseURL,
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"gemini":   "https://generativelanguage.googleapis.com/v1beta/openai",
}
