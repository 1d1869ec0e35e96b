// main.go
package main

import (
	"log"

	"tourism-booking/cmd"
	"tourism-booking/internal/data/catalog"
	"tourism-booking/internal/wire"
	"tourism-booking/pkg/utils"

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

	// Load embedded catalogs
	store, err := catalog.Load(logger)
	if err != nil {
		logger.Fatal("Failed to load catalogs", zap.Error(err))
	}

	logger.Info("Catalogs loaded successfully")

	// Wire all dependencies
	app := wire.Wiring(store, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
