package main

import (
	"log"
	"time"

	"cinema-checkout/cmd"
	"cinema-checkout/internal/data/draftstore"
	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/wire"
	"cinema-checkout/pkg/database"
	"cinema-checkout/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Pick the draft store backend
	ttl := time.Duration(config.Checkout.DraftTTLMinutes) * time.Minute
	var drafts draftstore.Store
	switch config.Checkout.DraftStore {
	case "redis":
		drafts, err = draftstore.NewRedisStore(config.Redis, ttl, logger)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		logger.Info("Using redis draft store", zap.String("addr", config.Redis.Addr))
	default:
		drafts = draftstore.NewMemoryStore(ttl)
		logger.Info("Using in-memory draft store")
	}

	// Wire all dependencies
	app := wire.Wiring(repos, drafts, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
