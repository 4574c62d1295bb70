package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/DzmitryiKorjik/avocado-price-prediction/shared/middleware"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/handlers"
	"github.com/DzmitryiKorjik/avocado-price-prediction/webapp-service/templates"
)

func SetupRoutes(hm *handlers.HandlerManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	tmpl := template.Must(template.ParseFS(templates.FS, "*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", hm.FormHandler.Index)
	r.POST("/predict", hm.FormHandler.Predict)

	return r
}
