package llm

import (
	"context"
	"errors"
)

// ErrNoChoices is returned when the provider answers without any choices.
var ErrNoChoices = errors.New("completion response contained no choices")

// Provider defines the interface for chat-completion providers.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Complete sends a completion request and returns the first choice.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
