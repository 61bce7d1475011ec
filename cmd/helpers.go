package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/codeassist/internal/config"
	"github.com/ziadkadry99/codeassist/internal/gateway"
	"github.com/ziadkadry99/codeassist/internal/llm"
	"github.com/ziadkadry99/codeassist/internal/logging"
	"github.com/ziadkadry99/codeassist/internal/prompt"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `codeassist init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// initLogger configures the global logger from cfg; --verbose forces debug.
func initLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.Init(logging.Options{
		Level:  level,
		Format: string(cfg.LogFormat),
		Output: os.Stderr,
	})
}

// newGateway builds the completion provider and gateway described by cfg.
func newGateway(cfg *config.Config, logger zerolog.Logger) (*gateway.Gateway, error) {
	provider, err := llm.NewProvider(llm.Settings{
		Provider:     string(cfg.Provider),
		Model:        cfg.Model,
		APIKey:       cfg.APIKey(),
		BaseURL:      cfg.BaseURL,
		RateLimitRPM: cfg.RateLimitRPM,
	})
	if err != nil {
		return nil, fmt.Errorf("creating completion provider: %w", err)
	}

	params := prompt.Params{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	}
	return gateway.New(provider, params, cfg.RequestTimeout, logger), nil
}

// readSource returns the contents of the file named by args[0], or stdin
// when no argument or "-" is given.
func readSource(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}
