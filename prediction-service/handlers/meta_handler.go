package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/services"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/constants"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

const apiVersion = "1.0"

// MetaHandler serves the informational endpoints that work in both the
// loaded and unloaded states.
type MetaHandler struct {
	predictService services.PredictService
}

func NewMetaHandler(predictService services.PredictService) *MetaHandler {
	return &MetaHandler{predictService: predictService}
}

// Home handles GET /: liveness plus the endpoint catalog.
func (h *MetaHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, models.HomeResponse{
		Status:  models.StatusSuccess,
		Message: "Avocado price prediction API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"/":              "This page (GET)",
			"/health":        "Health check (GET)",
			"/features":      "Required features (GET)",
			"/predict":       "Price prediction (POST)",
			"/predict_batch": "Batch price prediction (POST)",
			"/metrics":       "Prometheus metrics (GET)",
		},
	})
}

// Health handles GET /health. An unloaded model is reported as degraded,
// not as a request failure.
func (h *MetaHandler) Health(c *gin.Context) {
	loaded := h.predictService.ModelLoaded()
	resp := models.HealthResponse{
		Status:      models.StatusHealthy,
		ModelLoaded: loaded,
		Message:     "model is ready",
	}
	if !loaded {
		resp.Status = models.StatusUnhealthy
		resp.Message = "model is not loaded"
	}
	c.JSON(http.StatusOK, resp)
}

// Features handles GET /features: the static input schema and one example.
func (h *MetaHandler) Features(c *gin.Context) {
	c.JSON(http.StatusOK, models.FeaturesResponse{
		Status:   models.StatusSuccess,
		Features: constants.FeatureDescriptions,
		Example:  models.ExampleRecord(),
	})
}
