// Command prediction-service serves avocado price predictions over HTTP
// from the artifact produced by the trainer.
package main

import (
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/pipeline"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/config"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/handlers"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/routes"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/services"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/storage"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer logger.Sync()

	// Load the model once; a missing artifact degrades the service to the
	// unloaded state instead of failing startup.
	predictor, err := pipeline.Load(cfg.ModelPath)
	if err != nil {
		logger.Warn("model artifact not loaded, predict endpoints will be unavailable",
			zap.String("path", cfg.ModelPath), zap.Error(err))
		predictor = nil
	} else {
		logger.Info("model loaded",
			zap.String("path", cfg.ModelPath),
			zap.Time("trained_at", predictor.TrainedAt),
			zap.Int("features", predictor.Transformer.Width()))
	}

	var history *storage.HistoryStore
	if cfg.DatabaseURL != "" {
		history, err = storage.NewHistoryStore(cfg.DatabaseURL)
		if err != nil {
			logger.Warn("prediction history disabled", zap.Error(err))
			history = nil
		} else {
			logger.Info("prediction history enabled")
		}
	}

	serviceManager := services.NewServiceManager(predictor, history, logger)
	handlerManager := handlers.NewHandlerManager(serviceManager, logger)
	r := routes.SetupRoutes(handlerManager)

	logger.Info("prediction service starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
