// Command webapp-service serves the avocado price prediction form, a thin
// presentation layer over the prediction service's HTTP API.
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/logging"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/client"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/config"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/handlers"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/routes"
)

func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer logger.Sync()

	api := client.New(cfg.APIURL, cfg.HTTPTimeout)

	// Probe the backend with backoff; an unreachable API only degrades the
	// page to its offline banner.
	if err := api.WaitReady(context.Background()); err != nil {
		logger.Warn("prediction service not reachable at startup", zap.String("api_url", cfg.APIURL), zap.Error(err))
	} else {
		logger.Info("prediction service reachable", zap.String("api_url", cfg.APIURL))
	}

	handlerManager := handlers.NewHandlerManager(api, logger)
	r := routes.SetupRoutes(handlerManager)

	logger.Info("webapp starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
