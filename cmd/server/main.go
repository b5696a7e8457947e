package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aulaview/aulaview-backend/internal/cache"
	"github.com/aulaview/aulaview-backend/internal/config"
	"github.com/aulaview/aulaview-backend/internal/database"
	"github.com/aulaview/aulaview-backend/internal/directory"
	"github.com/aulaview/aulaview-backend/internal/handler"
	"github.com/aulaview/aulaview-backend/internal/logger"
	"github.com/aulaview/aulaview-backend/internal/router"
	"github.com/aulaview/aulaview-backend/internal/service"
	"github.com/aulaview/aulaview-backend/internal/upstream"
	"github.com/aulaview/aulaview-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("cache_backend", cfg.CacheBackend).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting AulaView Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Select Cache Backend ──────────────────────────────────────────
	var store cache.Store
	if cfg.CacheBackend == "redis" {
		rdb, err := database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		store = cache.NewRedis(rdb, log)
	} else {
		store = cache.NewMemory(cfg.CacheTTL)
	}

	// ─── Upstream Client ───────────────────────────────────────────────
	fetcher, err := upstream.New(cfg.LessonAPIBaseURL, cfg.UpstreamTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid LESSON_API_BASE_URL")
	}

	// ─── Services & Handlers ───────────────────────────────────────────
	campus := directory.Campus()
	lessonService := service.NewLessonService(fetcher, store, campus, cfg, log)

	handlers := &router.Handlers{
		Lesson: handler.NewLessonHandler(lessonService, campus),
		System: handler.NewSystemHandler(cfg.CacheBackend),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
