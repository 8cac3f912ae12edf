package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/enrollment/enrollment-api/internal/api"
	"github.com/enrollment/enrollment-api/internal/infrastructure/memory"
	"github.com/enrollment/enrollment-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the enrollment API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: "enrollment-api",
		})

		if cfg.UsingDefaultSecret() {
			log.Warn().Msg("JWT_SECRET not set, signing tokens with the built-in fallback secret")
		}

		e, err := api.NewRouter(api.RouterConfig{
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
			APIPrefix: cfg.APIPrefix,
			Logger:    log,
			Store:     memory.NewStore(memory.DefaultSeed()),
		})
		if err != nil {
			return fmt.Errorf("build router: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErrors := make(chan error, 1)
		go func() {
			log.Info().Str("port", cfg.Port).Str("prefix", cfg.APIPrefix).Msg("starting enrollment api")
			serverErrors <- e.Start(":" + cfg.Port)
		}()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server: %w", err)
		case <-ctx.Done():
			log.Info().Msg("shutting down gracefully")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	},
}
