// Package gateway turns convert, debug and quality requests into a single
// completion call each and relays the trimmed result.
package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/codeassist/internal/llm"
	"github.com/ziadkadry99/codeassist/internal/prompt"
)

var errNoProvider = errors.New("completion provider not configured")

// ConversionRequest asks for SourceCode to be translated to TargetLanguage.
type ConversionRequest struct {
	SourceCode     string
	TargetLanguage string
}

// DebugRequest asks for defects in SourceCode to be identified and fixed.
type DebugRequest struct {
	SourceCode string
}

// QualityRequest asks for SourceCode to be evaluated against Parameters.
type QualityRequest struct {
	SourceCode string
	Parameters string
}

// Gateway dispatches operation requests to a completion provider. It holds
// no per-request state and is safe for concurrent use.
type Gateway struct {
	provider llm.Provider
	params   prompt.Params
	timeout  time.Duration
	logger   zerolog.Logger
}

// New creates a Gateway. A zero timeout leaves upstream calls bounded only
// by the caller's context.
func New(provider llm.Provider, params prompt.Params, timeout time.Duration, logger zerolog.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		params:   params,
		timeout:  timeout,
		logger:   logger,
	}
}

// Convert translates the request's code into its target language. A blank
// target language is rejected with a *ValidationError before any upstream call.
func (g *Gateway) Convert(ctx context.Context, req ConversionRequest) (string, error) {
	if strings.TrimSpace(req.TargetLanguage) == "" {
		return "", &ValidationError{Field: "language", Message: "Target language is required"}
	}
	return g.dispatch(ctx, prompt.OpConvert, prompt.Convert(g.params, req.SourceCode, req.TargetLanguage))
}

// Debug asks the provider to find and fix defects in the code.
func (g *Gateway) Debug(ctx context.Context, req DebugRequest) (string, error) {
	return g.dispatch(ctx, prompt.OpDebug, prompt.Debug(g.params, req.SourceCode))
}

// CheckQuality asks the provider to evaluate the code against the request's criteria.
func (g *Gateway) CheckQuality(ctx context.Context, req QualityRequest) (string, error) {
	return g.dispatch(ctx, prompt.OpQuality, prompt.Quality(g.params, req.SourceCode, req.Parameters))
}

// dispatch makes exactly one provider call. Failures are logged with their
// cause and returned as *OperationFailedError.
func (g *Gateway) dispatch(ctx context.Context, op prompt.Operation, p prompt.CompletionPrompt) (string, error) {
	logger := g.logger.With().
		Str("op", string(op)).
		Str("op_id", uuid.NewString()).
		Str("request_id", middleware.GetReqID(ctx)).
		Logger()

	if g.provider == nil {
		logger.Error().Err(errNoProvider).Msg("completion failed")
		return "", &OperationFailedError{Op: op, Err: errNoProvider}
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.provider.Complete(ctx, p.Request())
	if err != nil {
		logger.Error().
			Err(err).
			Str("provider", g.provider.Name()).
			Dur("elapsed", time.Since(start)).
			Msg("completion failed")
		return "", &OperationFailedError{Op: op, Err: err}
	}

	logger.Info().
		Str("provider", g.provider.Name()).
		Str("model", resp.Model).
		Int("input_tokens", resp.InputTokens).
		Int("output_tokens", resp.OutputTokens).
		Float64("cost_usd", llm.EstimateCost(p.Model, resp.InputTokens, resp.OutputTokens)).
		Str("finish_reason", resp.FinishReason).
		Dur("elapsed", time.Since(start)).
		Msg("completion succeeded")

	return strings.TrimSpace(resp.Content), nil
}
