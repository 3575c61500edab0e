package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/gitscout/gitscout/internal/api"
	"github.com/gitscout/gitscout/internal/config"
	"github.com/gitscout/gitscout/internal/github"
	"github.com/gitscout/gitscout/internal/gitlab"
	"github.com/gitscout/gitscout/internal/search"

	_ "github.com/gitscout/gitscout/docs"
)

// @title GitScout API
// @version 1.0
// @description Search a username across GitHub and GitLab and browse the matched accounts.
// @host localhost:5000
// @BasePath /api
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Missing tokens are not fatal: requests go out unauthenticated and
	// fail with the provider's own auth error where one is required.
	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_API_TOKEN is not set")
	}
	if cfg.GitLabToken == "" {
		logger.Warn("GITLAB_API_TOKEN is not set")
	}

	// Initialize provider adapters and services
	githubClient := github.NewClient(cfg.GitHubBaseURL, cfg.GitHubToken, cfg.RequestTimeout, logger)
	gitlabClient := gitlab.NewClient(cfg.GitLabBaseURL, cfg.GitLabToken, cfg.RequestTimeout, logger)
	searchService := search.NewService(githubClient, gitlabClient, logger)
	handler := api.NewHandler(searchService, githubClient, gitlabClient, logger)

	router := api.SetupRouter(handler)
	if cfg.Env == "production" {
		api.ServeStatic(router, cfg.StaticDir)
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server exited properly")
}
