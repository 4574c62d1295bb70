package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/prediction-service/services"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
)

type PredictHandler struct {
	predictService services.PredictService
	logger         *zap.Logger
}

func NewPredictHandler(predictService services.PredictService, logger *zap.Logger) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		logger:         logger,
	}
}

// Predict handles POST /predict: one FeatureRecord in, one rounded USD
// price out. Missing or uncoercible fields are a client error naming the
// offending fields; an unloaded model is a server error.
func (h *PredictHandler) Predict(c *gin.Context) {
	if !h.predictService.ModelLoaded() {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(services.ErrModelNotLoaded.Error()))
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse("no JSON payload received"))
		return
	}

	rec, verr := models.ParseRecord(raw)
	if verr != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(verr.Error()))
		return
	}

	price, err := h.predictService.Predict(c.Request.Context(), *rec)
	if err != nil {
		h.logger.Error("prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("internal error: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.PredictResponse{
		Status:     models.StatusSuccess,
		Prediction: price,
		Unit:       "USD",
		Message:    fmt.Sprintf("Predicted price: %.2f USD", price),
		InputData:  raw,
	})
}

// PredictBatch handles POST /predict_batch: an ordered array of records.
// Each element is validated and predicted independently; a malformed
// element yields an error marker at its index instead of discarding the
// rest of the batch.
func (h *PredictHandler) PredictBatch(c *gin.Context) {
	if !h.predictService.ModelLoaded() {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse(services.ErrModelNotLoaded.Error()))
		return
	}

	var rawList []map[string]any
	if err := c.ShouldBindJSON(&rawList); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse("request body must be a JSON array of records"))
		return
	}

	items := make([]models.BatchItem, 0, len(rawList))
	for i, raw := range rawList {
		rec, verr := models.ParseRecord(raw)
		if verr != nil {
			items = append(items, models.BatchItem{Index: i, Error: verr.Error()})
			continue
		}
		price, err := h.predictService.Predict(c.Request.Context(), *rec)
		if err != nil {
			h.logger.Error("batch prediction failed", zap.Int("index", i), zap.Error(err))
			items = append(items, models.BatchItem{Index: i, Error: err.Error()})
			continue
		}
		p := price
		items = append(items, models.BatchItem{Index: i, Prediction: &p, Input: raw})
	}

	c.JSON(http.StatusOK, models.BatchResponse{
		Status:      models.StatusSuccess,
		Count:       len(items),
		Predictions: items,
	})
}
