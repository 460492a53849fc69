// main.go
package main

import (
	"context"
	"log"
	"time"

	"videogen-portal/cmd"
	"videogen-portal/internal/data/repository"
	"videogen-portal/internal/wire"
	"videogen-portal/pkg/database"
	"videogen-portal/pkg/mailer"
	"videogen-portal/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if err := database.RunMigrations(context.Background(), config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories and the mail dispatcher
	repos := repository.NewRepository(db, logger)

	dispatcher, err := mailer.NewSMTPMailer(config.Email, logger)
	if err != nil {
		logger.Fatal("Failed to init mailer", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, dispatcher, config, logger)

	// Sweep expired sessions in the background
	go sweepSessions(repos.Session, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func sweepSessions(sessions repository.SessionRepository, logger *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := sessions.CleanExpiredSessions(ctx); err != nil {
			logger.Warn("Session sweep failed", zap.Error(err))
		}
		cancel()
	}
}
