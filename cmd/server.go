package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeassist/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP gateway",
	Long:  `Starts the codeassist HTTP gateway exposing POST /convert, /debug and /quality.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		logger := initLogger(cfg)

		g, err := newGateway(cfg, logger)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:           cfg.Port,
			CORSOrigins:    cfg.CORSOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}, g, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info().
			Str("version", Version).
			Str("provider", string(cfg.Provider)).
			Str("model", cfg.Model).
			Int("max_tokens", cfg.MaxTokens).
			Float64("temperature", cfg.Temperature).
			Dur("request_timeout", cfg.RequestTimeout).
			Strs("cors_origins", cfg.CORSOrigins).
			Msg("codeassist server starting")

		return runUntilSignal(ctx, srv, drainTimeout(cfg.RequestTimeout), logger)
	},
}

// lifecycle is the part of *server.Server that runUntilSignal drives.
type lifecycle interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// drainTimeout gives in-flight requests time to finish their upstream call.
func drainTimeout(requestTimeout time.Duration) time.Duration {
	if d := requestTimeout + 5*time.Second; d > 15*time.Second {
		return d
	}
	return 15 * time.Second
}

// runUntilSignal serves until ctx is done, then shuts srv down and returns
// only after Shutdown has drained in-flight requests.
func runUntilSignal(ctx context.Context, srv lifecycle, drain time.Duration, logger zerolog.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		logger.Info().Dur("drain_timeout", drain).Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	logger.Info().Msg("server stopped")
	return nil
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 3000, "port to listen on (overrides config and PORT)")
	rootCmd.AddCommand(serverCmd)
}
