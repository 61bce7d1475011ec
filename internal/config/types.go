package config

import "time"

// ProviderType identifies a chat-completion provider.
type ProviderType string

const (
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
)

// LogFormat selects the zerolog output encoding.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Config is the top-level codeassist configuration, corresponding to .codeassist.yml.
type Config struct {
	Port     int          `yaml:"port" koanf:"port"`
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	// BaseURL overrides the provider endpoint; empty means the provider default.
	BaseURL string `yaml:"base_url,omitempty" koanf:"base_url"`
	// MaxTokens bounds the completion length. Long answers are truncated.
	MaxTokens int `yaml:"max_tokens" koanf:"max_tokens"`
	// Temperature trades determinism (0) for variety (higher).
	Temperature float64 `yaml:"temperature" koanf:"temperature"`
	// RequestTimeout bounds each upstream completion call.
	RequestTimeout time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	// RateLimitRPM caps upstream calls per minute; 0 disables the limiter.
	RateLimitRPM int       `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
	CORSOrigins  []string  `yaml:"cors_origins" koanf:"cors_origins"`
	LogLevel     string    `yaml:"log_level" koanf:"log_level"`
	LogFormat    LogFormat `yaml:"log_format" koanf:"log_format"`
}
