package handlers

import (
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/client"
)

type HandlerManager struct {
	FormHandler *FormHandler
}

func NewHandlerManager(api *client.Client, logger *zap.Logger) *HandlerManager {
	return &HandlerManager{
		FormHandler: NewFormHandler(api, logger),
	}
}
