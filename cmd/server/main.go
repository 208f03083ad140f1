package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/trindtech/student-registry/internal/config"
	"github.com/trindtech/student-registry/internal/database"
	"github.com/trindtech/student-registry/internal/handler"
	"github.com/trindtech/student-registry/internal/logger"
	"github.com/trindtech/student-registry/internal/repository"
	"github.com/trindtech/student-registry/internal/router"
	"github.com/trindtech/student-registry/internal/service"
	"github.com/trindtech/student-registry/internal/validator"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting student registry")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)
	studentRepo := repository.NewStudentRepository(pool, log)
	associationRepo := repository.NewStudentCourseRepository(pool)

	handlers := &router.Handlers{
		Course:        handler.NewCourseHandler(service.NewCourseService(courseRepo)),
		Student:       handler.NewStudentHandler(service.NewStudentService(studentRepo)),
		StudentCourse: handler.NewStudentCourseHandler(service.NewStudentCourseService(associationRepo)),
	}

	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

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
