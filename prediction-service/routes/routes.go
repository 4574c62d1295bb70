package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/handlers"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/middleware"
)

func SetupRoutes(hm *handlers.HandlerManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	// the web form may be served from a different origin
	r.Use(cors.Default())

	r.GET("/", hm.MetaHandler.Home)
	r.GET("/health", hm.MetaHandler.Health)
	r.GET("/features", hm.MetaHandler.Features)
	r.POST("/predict", hm.PredictHandler.Predict)
	r.POST("/predict_batch", hm.PredictHandler.PredictBatch)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
