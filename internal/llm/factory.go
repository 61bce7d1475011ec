package llm

import (
	"fmt"
	"net/http"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// Settings describes how to construct a Provider.
type Settings struct {
	Provider string
	Model    string
	APIKey   string
	// BaseURL overrides the provider's default endpoint.
	BaseURL string
	// RateLimitRPM wraps the provider in a limiter when positive.
	RateLimitRPM int
	HTTPClient   *http.Client
}

// NewProvider creates a Provider from settings.
// Supported provider types: "openai", "openrouter".
func NewProvider(s Settings) (Provider, error) {
	var p Provider

	switch s.Provider {
	case "openai":
		if s.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		p = NewOpenAIProvider("openai", s.APIKey, s.Model, s.BaseURL, s.HTTPClient)

	case "openrouter":
		if s.APIKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable is not set")
		}
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = openRouterBaseURL
		}
		p = NewOpenAIProvider("openrouter", s.APIKey, s.Model, baseURL, s.HTTPClient)

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", s.Provider)
	}

	if s.RateLimitRPM > 0 {
		p = NewRateLimitedProvider(p, s.RateLimitRPM)
	}
	return p, nil
}
