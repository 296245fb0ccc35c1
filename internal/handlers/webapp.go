package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/artifacts"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/encoder"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/geo"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/prediction"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/telemetry"
)

const indexTemplate = "index.html"

// DistrictsResponse lists districts in display order.
type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

// WardsResponse lists the wards of one district.
type WardsResponse struct {
	District string   `json:"district" example:"Quận 1"`
	Wards    []string `json:"wards"`
}

// OptionsResponse lists the remaining categorical choices of the form.
type OptionsResponse struct {
	Directions []string `json:"directions"`
	HouseTypes []string `json:"house_types"`
}

// PredictResponse is a successful JSON prediction.
type PredictResponse struct {
	Price     float64 `json:"price" example:"5234567890"`
	Formatted string  `json:"formatted" example:"5,234,567,890"`
	Message   string  `json:"message" example:"Giá nhà dự đoán: 5,234,567,890 VNĐ"`
}

// pageData feeds the form template.
type pageData struct {
	Ready           bool
	NotReadyMessage string
	Districts       []string
	Wards           []string
	Directions      []string
	HouseTypes      []string
	Form            prediction.Form
	Success         string
	Error           string
}

// WebApp serves the prediction form and its JSON API.
type WebApp struct {
	bundle  *artifacts.Bundle
	service *prediction.Service
	table   *geo.Table
	metrics *telemetry.Metrics
}

// NewWebApp creates the form controller. metrics may be nil.
func NewWebApp(bundle *artifacts.Bundle, table *geo.Table, metrics *telemetry.Metrics) *WebApp {
	return &WebApp{
		bundle:  bundle,
		service: prediction.FromBundle(bundle),
		table:   table,
		metrics: metrics,
	}
}

// districts are the encoder's fitted districts; the reference table is the fallback
// when no encoder is loaded.
func (w *WebApp) districts() []string {
	if w.bundle.Loaded() {
		return w.bundle.Encoder.Categories(models.ColumnDistrict)
	}
	return w.table.Districts()
}

func (w *WebApp) categories(column string) []string {
	if !w.bundle.Loaded() {
		return nil
	}
	return w.bundle.Encoder.Categories(column)
}

// wards looks a district up in the reference table. A fitted district missing
// from the table has no wards; anything else is unknown.
func (w *WebApp) wards(district string) ([]string, error) {
	if !w.table.Has(district) && w.bundle.Loaded() && w.bundle.Encoder.Contains(models.ColumnDistrict, district) {
		return []string{}, nil
	}
	return w.table.Wards(district)
}

func (w *WebApp) page(form prediction.Form) pageData {
	data := pageData{
		Ready:           w.service.Ready(),
		NotReadyMessage: prediction.MsgNotLoaded,
		Districts:       w.districts(),
		Directions:      w.categories(models.ColumnDirection),
		HouseTypes:      w.categories(models.ColumnHouseType),
		Form:            form,
	}
	if data.Form.District == "" && len(data.Districts) > 0 {
		data.Form.District = data.Districts[0]
	}
	if wards, err := w.wards(data.Form.District); err == nil {
		data.Wards = wards
	}
	return data
}

func (w *WebApp) observe(err error) {
	if w.metrics == nil {
		return
	}
	var verr *prediction.ValidationError
	switch {
	case err == nil:
		w.metrics.ObservePrediction(telemetry.OutcomeSuccess)
	case errors.As(err, &verr):
		w.metrics.ObservePrediction(telemetry.OutcomeValidation)
	case errors.Is(err, encoder.ErrInvalidInput):
		w.metrics.ObservePrediction(telemetry.OutcomeInvalidInput)
	case errors.Is(err, artifacts.ErrNotLoaded):
		w.metrics.ObservePrediction(telemetry.OutcomeNotLoaded)
	default:
		w.metrics.ObservePrediction(telemetry.OutcomeError)
	}
}

// Index renders the form. ?district= preselects a district and its wards.
func (w *WebApp) Index(c *gin.Context) {
	form := prediction.Form{Floors: 1, District: c.Query("district")}
	c.HTML(http.StatusOK, indexTemplate, w.page(form))
}

// SubmitForm prices a submitted HTML form and re-renders it with the outcome.
func (w *WebApp) SubmitForm(c *gin.Context) {
	form := prediction.Form{
		Area:      parseFloat(c.PostForm("area")),
		Floors:    parseInt(c.PostForm("floors")),
		Bedrooms:  parseInt(c.PostForm("bedrooms")),
		Bathrooms: parseInt(c.PostForm("bathrooms")),
		Direction: c.PostForm("direction"),
		HouseType: c.PostForm("house_type"),
		District:  c.PostForm("district"),
		Ward:      c.PostForm("ward"),
	}

	data := w.page(form)
	if math.IsNaN(data.Form.Area) {
		data.Form.Area = 0
	}

	est, err := w.service.Estimate(c.Request.Context(), form)
	w.observe(err)
	if err != nil {
		data.Error = prediction.UserMessage(err)
		log.Printf("[%s] Prediction rejected: %v", RequestID(c), err)
	} else {
		data.Success = est.Message
		log.Printf("[%s] Predicted %.0f VND for %s, %s", RequestID(c), est.Price, form.Ward, form.District)
	}
	c.HTML(http.StatusOK, indexTemplate, data)
}

// Healthz is the web app's own liveness probe.
func (w *WebApp) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "model_loaded": w.bundle.Loaded()})
}

// ListDistricts godoc
// @Summary List districts
// @Description Districts in the order the encoder was fitted with.
// @Tags reference
// @Produce json
// @Success 200 {object} DistrictsResponse
// @Router /api/v1/districts [get]
func (w *WebApp) ListDistricts(c *gin.Context) {
	RespondWithSuccess(c, http.StatusOK, DistrictsResponse{Districts: w.districts()})
}

// ListWards godoc
// @Summary List wards of a district
// @Tags reference
// @Produce json
// @Param district path string true "District name, e.g. Quận 1"
// @Success 200 {object} WardsResponse
// @Failure 404 {object} models.APIError "Unknown district (DISTRICT_NOT_FOUND)"
// @Router /api/v1/districts/{district}/wards [get]
func (w *WebApp) ListWards(c *gin.Context) {
	district := c.Param("district")
	wards, err := w.wards(district)
	if err != nil {
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeDistrictNotFound, "District not found.", gin.H{"district": district})
		return
	}
	RespondWithSuccess(c, http.StatusOK, WardsResponse{District: district, Wards: wards})
}

// ListOptions godoc
// @Summary List direction and house type choices
// @Tags reference
// @Produce json
// @Success 200 {object} OptionsResponse
// @Failure 503 {object} models.APIError "Model artifacts not loaded"
// @Router /api/v1/options [get]
func (w *WebApp) ListOptions(c *gin.Context) {
	if !w.bundle.Loaded() {
		RespondWithError(c, http.StatusServiceUnavailable, models.ErrorCodeServiceUnavailable, prediction.MsgNotLoaded, nil)
		return
	}
	RespondWithSuccess(c, http.StatusOK, OptionsResponse{
		Directions: w.categories(models.ColumnDirection),
		HouseTypes: w.categories(models.ColumnHouseType),
	})
}

// Predict godoc
// @Summary Estimate a house price
// @Tags prediction
// @Accept json
// @Produce json
// @Param form body prediction.Form true "Property attributes"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} models.APIError "Malformed JSON or implausible values"
// @Failure 422 {object} models.APIError "Area not covered by the model (INSUFFICIENT_DATA)"
// @Failure 500 {object} models.APIError "Prediction failed"
// @Failure 503 {object} models.APIError "Model artifacts not loaded"
// @Router /api/v1/predict [post]
func (w *WebApp) Predict(c *gin.Context) {
	var form prediction.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidJSON, "Invalid request payload", gin.H{"reason": err.Error()})
		return
	}

	est, err := w.service.Estimate(c.Request.Context(), form)
	w.observe(err)
	if err != nil {
		w.respondPredictError(c, err)
		return
	}
	RespondWithSuccess(c, http.StatusOK, PredictResponse{
		Price:     est.Price,
		Formatted: prediction.FormatPrice(est.Price),
		Message:   est.Message,
	})
}

func (w *WebApp) respondPredictError(c *gin.Context, err error) {
	msg := prediction.UserMessage(err)

	var verr *prediction.ValidationError
	switch {
	case errors.As(err, &verr):
		code := models.ErrorCodeValueOutOfRange
		if verr.Field == "district" || verr.Field == "ward" {
			code = models.ErrorCodeMissingSelection
		}
		RespondWithError(c, http.StatusBadRequest, code, msg, gin.H{"field": verr.Field})
	case errors.Is(err, encoder.ErrInvalidInput):
		RespondWithError(c, http.StatusUnprocessableEntity, models.ErrorCodeInsufficientData, msg, nil)
	case errors.Is(err, artifacts.ErrNotLoaded):
		RespondWithError(c, http.StatusServiceUnavailable, models.ErrorCodeServiceUnavailable, msg, nil)
	default:
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePredictionFailed, msg, nil)
	}
}

// parseFloat returns NaN for unparsable input so validation rejects it.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseInt returns 0 for unparsable input so validation rejects it.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Number inputs may post "2.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
		return int(f)
	}
	return 0
}
