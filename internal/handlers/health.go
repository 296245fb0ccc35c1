package handlers

import (
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/artifacts"
)

// AppName is reported by the metrics endpoint.
const AppName = "house-price-estimator"

// HealthResponse is the body of GET /health.
// @Description HealthResponse reports whether the model artifacts are loaded.
type HealthResponse struct {
	Status      string `json:"status" example:"healthy"`
	Timestamp   string `json:"timestamp" example:"2025-05-29T10:00:00.000000000+07:00"`
	Version     string `json:"version" example:"1.0.0"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	Error       string `json:"error,omitempty" example:"Model file not found: model_estimate_price_house_v5.json"`
}

// MetricsResponse is the body of GET /metrics.
type MetricsResponse struct {
	AppInfo    AppInfo    `json:"app_info"`
	ModelInfo  ModelInfo  `json:"model_info"`
	SystemInfo SystemInfo `json:"system_info"`
}

type AppInfo struct {
	Name          string  `json:"name" example:"house-price-estimator"`
	Version       string  `json:"version" example:"1.0.0"`
	Uptime        string  `json:"uptime" example:"1h2m3s"`
	UptimeSeconds float64 `json:"uptime_seconds" example:"3723"`
}

type ModelInfo struct {
	ModelLoaded bool   `json:"model_loaded" example:"true"`
	ModelFile   string `json:"model_file" example:"model_estimate_price_house_v5.json"`
	EncoderFile string `json:"encoder_file" example:"encoder_v5.json"`
}

type SystemInfo struct {
	GoVersion string `json:"go_version" example:"go1.23.9"`
	Timestamp string `json:"timestamp" example:"2025-05-29T10:00:00.000000000+07:00"`
}

// ReadyResponse is the body of GET /ready.
type ReadyResponse struct {
	Status string `json:"status" example:"ready"`
	Reason string `json:"reason,omitempty" example:"model not loaded"`
}

// HealthHandler serves the monitoring endpoints over a fixed load status.
type HealthHandler struct {
	bundle    *artifacts.Bundle
	version   func() string
	startedAt time.Time
	now       func() time.Time
}

// NewHealthHandler creates the handler. version is read on every request.
func NewHealthHandler(bundle *artifacts.Bundle, version func() string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{
		bundle:    bundle,
		version:   version,
		startedAt: startedAt,
		now:       time.Now,
	}
}

func (h *HealthHandler) timestamp() string {
	return h.now().Format(time.RFC3339Nano)
}

// Health godoc
// @Summary Liveness check
// @Description Reports healthy with 200 when the model and encoder are loaded, unhealthy with 500 otherwise.
// @Tags monitoring
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	log.Println("Health check endpoint accessed")

	resp := HealthResponse{
		Status:      "healthy",
		Timestamp:   h.timestamp(),
		Version:     h.version(),
		ModelLoaded: h.bundle.Loaded(),
	}
	if !resp.ModelLoaded {
		resp.Status = "unhealthy"
		resp.Error = h.bundle.StatusError()
		log.Printf("Warning: health check reports unhealthy: %s", resp.Error)
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Metrics godoc
// @Summary Application metrics
// @Description Static application, model and runtime information. Always 200.
// @Tags monitoring
// @Produce json
// @Success 200 {object} MetricsResponse
// @Router /metrics [get]
func (h *HealthHandler) Metrics(c *gin.Context) {
	uptime := h.now().Sub(h.startedAt)
	if uptime < 0 {
		uptime = 0
	}

	c.JSON(http.StatusOK, MetricsResponse{
		AppInfo: AppInfo{
			Name:          AppName,
			Version:       h.version(),
			Uptime:        uptime.Round(time.Second).String(),
			UptimeSeconds: uptime.Seconds(),
		},
		ModelInfo: ModelInfo{
			ModelLoaded: h.bundle.Loaded(),
			ModelFile:   h.bundle.ModelFile(),
			EncoderFile: h.bundle.EncoderFile(),
		},
		SystemInfo: SystemInfo{
			GoVersion: runtime.Version(),
			Timestamp: h.timestamp(),
		},
	})
}

// Ready godoc
// @Summary Readiness check
// @Description 200 when the model is loaded, 503 otherwise.
// @Tags monitoring
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.bundle.Loaded() {
		c.JSON(http.StatusOK, ReadyResponse{Status: "ready"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "not ready", Reason: "model not loaded"})
}
