package handlers

import (
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/services"
)

type HandlerManager struct {
	PredictHandler *PredictHandler
	MetaHandler    *MetaHandler
}

func NewHandlerManager(sm *services.ServiceManager, logger *zap.Logger) *HandlerManager {
	return &HandlerManager{
		PredictHandler: NewPredictHandler(sm.PredictService, logger),
		MetaHandler:    NewMetaHandler(sm.PredictService),
	}
}
