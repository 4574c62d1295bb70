package services

import (
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/pkg/pipeline"
	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/storage"
)

type ServiceManager struct {
	PredictService PredictService
}

func NewServiceManager(predictor *pipeline.Predictor, history *storage.HistoryStore, logger *zap.Logger) *ServiceManager {
	return &ServiceManager{
		PredictService: NewPredictService(predictor, history, logger),
	}
}
