// main.go
package main

import (
	"context"
	"log"

	"movie-rental/cmd"
	"movie-rental/internal/data/gateway"
	"movie-rental/internal/store"
	"movie-rental/internal/wire"
	"movie-rental/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.API.BaseURL),
		zap.Bool("debug", config.App.Debug),
	)

	gw, err := gateway.NewGateway(gateway.Options{
		BaseURL:   config.API.BaseURL,
		Timeout:   config.API.Timeout,
		RateLimit: config.API.RateLimit,
		RateBurst: config.API.RateBurst,
		UserAgent: config.API.UserAgent,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to build backend gateway", zap.Error(err))
	}

	rollback, err := store.ParseRollbackPolicy(config.Store.RollbackMode)
	if err != nil {
		logger.Fatal("Invalid store configuration", zap.Error(err))
	}
	st := store.New(gw, store.Options{Rollback: rollback}, logger)

	// Views report loading until every collection settles
	st.Init(context.Background())

	app := wire.Wiring(st, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.App.ShutdownTimeout)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		logger.Warn("Store did not drain before shutdown", zap.Error(err))
	}
}
