package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/logging"
	jwtsvc "foodgram/internal/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("database migration failed")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(cfg, db, j),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("server shutdown error")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logging.Info().Msg("server stopped")
}
