package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MaxiBlanc/Krevo-control/internal/config"
	"github.com/MaxiBlanc/Krevo-control/internal/infra"
	"github.com/MaxiBlanc/Krevo-control/internal/realtime"
	"github.com/MaxiBlanc/Krevo-control/internal/repository"
	"github.com/MaxiBlanc/Krevo-control/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.AdminPassword == "" {
		// The gate still fails closed without it, but an operator can never
		// log in — say so loudly at startup instead of at the login screen.
		log.Warn().Msg("ADMIN_PASSWORD is not set; every login will be rejected")
	}

	db, err := infra.NewMongo(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	uploader := infra.NewCloudinaryClient(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)

	// The hub holds the catalog snapshot and fans out store changes to every
	// connected panel; it runs for the life of the process.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub(
		repository.NewCategoriaRepository(db),
		repository.NewProductoRepository(db),
		rdb,
	)
	go hub.Run(ctx)

	r := router.New(cfg, db, rdb, hub, uploader)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // websocket streams have no write deadline
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Krevo control panel listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
