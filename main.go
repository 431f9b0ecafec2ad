package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nkotak/student-collab/internal/api"
	"github.com/nkotak/student-collab/internal/config"
	"github.com/nkotak/student-collab/internal/database"
	"github.com/nkotak/student-collab/internal/logger"
	"github.com/nkotak/student-collab/internal/services"
	"github.com/nkotak/student-collab/internal/session"
	"github.com/nkotak/student-collab/internal/web"
)

func main() {
	// Load configuration; a missing DATABASE_PATH or SESSION_SECRET is fatal
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.AppEnv)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}
	log.Info().Str("database", cfg.DatabasePath).Msg("Connected to database")

	// Set up services
	userService := services.NewUserService(db)
	postService := services.NewPostService(db)
	registrationService := services.NewRegistrationService(db)

	// Set up sessions and views
	sessions := session.NewManager(cfg.SessionSecret, cfg.IsProduction())
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	// Set up router
	router := api.NewRouter(sessions, renderer, userService, postService, registrationService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
