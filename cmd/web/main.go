package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/azigroup/website/internal/config"
	"github.com/azigroup/website/internal/database"
	"github.com/azigroup/website/internal/logger"
	"github.com/azigroup/website/internal/models"
	"github.com/azigroup/website/internal/server"
	"github.com/azigroup/website/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogPath)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	// Connect to database
	if err := database.Connect(cfg, log); err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	// Run migrations
	if err := models.AutoMigrate(database.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed admin user if not exists
	if err := services.NewUserService(database.DB).EnsureAdmin(log); err != nil {
		log.Error("Failed to create admin user", zap.Error(err))
	}

	jwtSecret := database.EnsureJWTSecret(database.DB, cfg.JWTSecret, log)

	if err := os.MkdirAll(cfg.MediaRoot, 0o755); err != nil {
		log.Fatal("Failed to create media directory", zap.Error(err))
	}

	app := server.New(cfg, database.DB, jwtSecret, log)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Error("Shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%d", cfg.AppPort)
	log.Info("Starting AZI GROUP web server", zap.String("addr", addr), zap.String("site_url", cfg.SiteURL))
	if err := app.Listen(addr); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
