package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".codeassist.yml"

// providerModels lists the default model per provider.
var providerModels = map[ProviderType]string{
	ProviderOpenAI:     "gpt-3.5-turbo",
	ProviderOpenRouter: "openai/gpt-3.5-turbo",
}

// DefaultConfig returns a Config with the service defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           3000,
		Provider:       ProviderOpenAI,
		Model:          providerModels[ProviderOpenAI],
		MaxTokens:      150,
		Temperature:    0.6,
		RequestTimeout: 60 * time.Second,
		RateLimitRPM:   0,
		CORSOrigins:    []string{"*"},
		LogLevel:       "info",
		LogFormat:      LogFormatJSON,
	}
}

// DefaultModel returns the default model for the given provider, falling
// back to the OpenAI default.
func DefaultModel(provider ProviderType) string {
	if m, ok := providerModels[provider]; ok {
		return m
	}
	return providerModels[ProviderOpenAI]
}
