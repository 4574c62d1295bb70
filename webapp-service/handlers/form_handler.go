package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/constants"
	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/models"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/client"
)

// FormInput mirrors the prediction form. Bounds match the validation the
// API applies, so a well-behaved browser never sees a 400.
type FormInput struct {
	Quality1   float64 `form:"quality1" validate:"gte=0,lte=1000000"`
	Quality2   float64 `form:"quality2" validate:"gte=0,lte=1000000"`
	Quality3   float64 `form:"quality3" validate:"gte=0,lte=1000000"`
	SmallBags  float64 `form:"small_bags" validate:"gte=0,lte=1000000"`
	LargeBags  float64 `form:"large_bags" validate:"gte=0,lte=1000000"`
	XLargeBags float64 `form:"xlarge_bags" validate:"gte=0,lte=1000000"`
	Year       int     `form:"year" validate:"required"`
	Type       string  `form:"type" validate:"required,oneof=conventional organic"`
	Region     string  `form:"region" validate:"required"`
}

func (in FormInput) record() models.FeatureRecord {
	return models.FeatureRecord{
		Quality1:   in.Quality1,
		Quality2:   in.Quality2,
		Quality3:   in.Quality3,
		SmallBags:  in.SmallBags,
		LargeBags:  in.LargeBags,
		XLargeBags: in.XLargeBags,
		Year:       in.Year,
		Type:       in.Type,
		Region:     in.Region,
	}
}

func defaultForm() FormInput {
	ex := models.ExampleRecord()
	return FormInput{
		Quality1:   ex.Quality1,
		Quality2:   ex.Quality2,
		Quality3:   ex.Quality3,
		SmallBags:  ex.SmallBags,
		LargeBags:  ex.LargeBags,
		XLargeBags: ex.XLargeBags,
		Year:       ex.Year,
		Type:       ex.Type,
		Region:     ex.Region,
	}
}

// ResultView is a rendered prediction.
type ResultView struct {
	Price        float64
	Band         string // low, medium, high
	BandText     string
	RequestJSON  string
	ResponseJSON string
}

// PageData feeds the form template.
type PageData struct {
	APIURL      string
	BackendUp   bool
	ModelLoaded bool

	Regions []string
	Years   []int
	Types   []constants.AvocadoType

	Form   FormInput
	Result *ResultView

	// ErrorMessage is a validation or API failure; ConnError marks
	// connectivity failures, rendered distinctly.
	ErrorMessage string
	ErrorDetail  string
	ConnError    bool
}

type FormHandler struct {
	api      *client.Client
	validate *validator.Validate
	logger   *zap.Logger
}

func NewFormHandler(api *client.Client, logger *zap.Logger) *FormHandler {
	return &FormHandler{
		api:      api,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *FormHandler) basePage(c *gin.Context) PageData {
	data := PageData{
		APIURL:  h.api.BaseURL(),
		Regions: constants.Regions,
		Years:   constants.Years,
		Types:   constants.AvocadoTypes,
		Form:    defaultForm(),
	}
	if health, err := h.api.Health(c.Request.Context()); err == nil {
		data.BackendUp = true
		data.ModelLoaded = health.ModelLoaded
	}
	return data
}

// Index handles GET /: the empty form plus backend connectivity state.
func (h *FormHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.basePage(c))
}

// Predict handles the form POST and renders the priced result.
func (h *FormHandler) Predict(c *gin.Context) {
	data := h.basePage(c)

	var in FormInput
	if err := c.ShouldBind(&in); err != nil {
		data.ErrorMessage = "invalid form input: " + err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}
	data.Form = in

	if err := h.validate.Struct(in); err != nil {
		data.ErrorMessage = "invalid form input: " + err.Error()
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}
	if !slices.Contains(constants.Regions, in.Region) {
		data.ErrorMessage = fmt.Sprintf("unknown region %q", in.Region)
		c.HTML(http.StatusBadRequest, "index.html", data)
		return
	}

	rec := in.record()
	resp, err := h.api.Predict(c.Request.Context(), rec)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			data.ErrorMessage = fmt.Sprintf("the prediction service rejected the request (status %d)", apiErr.StatusCode)
			data.ErrorDetail = apiErr.Body
		} else {
			h.logger.Warn("prediction service unreachable", zap.Error(err))
			data.BackendUp = false
			data.ConnError = true
			data.ErrorMessage = "cannot reach the prediction service, make sure it is running"
		}
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	reqJSON, _ := json.MarshalIndent(rec, "", "  ")
	respJSON, _ := json.MarshalIndent(resp, "", "  ")
	data.Result = &ResultView{
		Price:        resp.Prediction,
		RequestJSON:  string(reqJSON),
		ResponseJSON: string(respJSON),
	}
	data.Result.Band, data.Result.BandText = priceBand(resp.Prediction)

	c.HTML(http.StatusOK, "index.html", data)
}

// priceBand maps a price to its interpretation band.
func priceBand(price float64) (band, text string) {
	switch {
	case price < 1.0:
		return "low", fmt.Sprintf("Low price! Avocados are affordable at %.2f $", price)
	case price < 1.5:
		return "medium", fmt.Sprintf("Average price. Avocados cost %.2f $", price)
	default:
		return "high", fmt.Sprintf("High price! Avocados cost %.2f $", price)
	}
}
