package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/api"
	"github.com/shsakib002/e-comm/internal/config"
	"github.com/shsakib002/e-comm/internal/repository/fixture"
	"github.com/shsakib002/e-comm/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load the fixture dataset
	store, err := fixture.Load(cfg.FixturePath, logger)
	if err != nil {
		logger.Fatal("Failed to load fixture", zap.Error(err))
	}

	repos := fixture.NewRepositories(store)
	drafts := service.NewDraftService(repos, logger)

	router := api.NewRouter(cfg, repos, drafts, logger)

	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
