package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/telemetry"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/web"
)

// newEngine is gin.Default with a recovery handler that answers in the API error format.
func newEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[%s] Recovered from panic: %v", RequestID(c), recovered)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Internal server error", nil)
		c.Abort()
	}))
	return router
}

// NewAPIRouter wires the health reporting service.
func NewAPIRouter(h *HealthHandler, metrics *telemetry.Metrics) *gin.Engine {
	router := newEngine()
	router.Use(RequestIDMiddleware(), metrics.Middleware())

	router.GET("/health", h.Health)
	router.GET("/metrics", h.Metrics)
	router.GET("/ready", h.Ready)
	router.GET("/prometheus", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// NewWebAppRouter wires the prediction form and its JSON API.
func NewWebAppRouter(w *WebApp, metrics *telemetry.Metrics) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := newEngine()
	router.SetHTMLTemplate(tmpl)
	router.Use(RequestIDMiddleware(), metrics.Middleware())

	router.GET("/", w.Index)
	router.POST("/predict", w.SubmitForm)
	router.GET("/healthz", w.Healthz)
	router.GET("/prometheus", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(CORSMiddleware(nil))
	{
		v1.GET("/districts", w.ListDistricts)
		v1.GET("/districts/:district/wards", w.ListWards)
		v1.GET("/options", w.ListOptions)
		v1.POST("/predict", w.Predict)
		v1.OPTIONS("/*path", func(c *gin.Context) {})
	}

	return router, nil
}
