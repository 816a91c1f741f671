package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aTrapDeer/portfolio-api/internal/api"
	"github.com/aTrapDeer/portfolio-api/internal/config"
	"github.com/aTrapDeer/portfolio-api/internal/database"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening database")
	}
	if err := database.Migrate(db); err != nil {
		// never serve requests against a half-initialized store
		log.Fatal().Err(err).Msg("initializing schema")
	}
	log.Info().Str("path", cfg.DatabasePath).Msg("database ready")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: api.New(cfg, log, db).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("portfolio API server running")
		errCh <- server.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown")
		}
	}

	database.Close(db, log)
	log.Info().Msg("server stopped")
}
