package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/content"
	"github.com/itzmejanak/devalaya-backend/internal/database"
	"github.com/itzmejanak/devalaya-backend/internal/handler"
	"github.com/itzmejanak/devalaya-backend/internal/logger"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
	"github.com/itzmejanak/devalaya-backend/internal/router"
	"github.com/itzmejanak/devalaya-backend/internal/service"
	"github.com/itzmejanak/devalaya-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Devalaya Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Close(context.Background())

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure indexes")
	}

	// ─── Load Embedded Content Snapshot ────────────────────────────────
	snap, err := content.LoadSnapshot()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load content snapshot")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	blogRepo := repository.NewBlogRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)
	cardRepo := repository.NewCardRepository()

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo)
	blogService := service.NewBlogService(blogRepo)
	careerService := service.NewCareerService(careerRepo)
	projectService := service.NewProjectService(projectRepo)
	userService := service.NewUserService(userRepo, authService)
	contentService := service.NewContentService(cfg, snap, log)
	cardService := service.NewCardService(cardRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Blog:    handler.NewBlogHandler(blogService),
		Career:  handler.NewCareerHandler(careerService),
		Project: handler.NewProjectHandler(projectService),
		User:    handler.NewUserHandler(userService),
		Content: handler.NewContentHandler(contentService),
		Card:    handler.NewCardHandler(cardService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

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
