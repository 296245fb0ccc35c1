package prediction

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/artifacts"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/encoder"
	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

// Messages shown when a prediction cannot be made.
const (
	MsgInsufficientData = "Xin lỗi, chúng tôi không đủ dữ liệu để dự đoán giá nhà ở khu vực này."
	MsgNotLoaded        = "Mô hình dự đoán chưa sẵn sàng, vui lòng thử lại sau."
)

// Encoder turns a record into a model input row.
type Encoder interface {
	Encode(record models.PropertyRecord) ([]float64, error)
}

// Predictor runs the regression model over input rows.
type Predictor interface {
	Predict(rows [][]float64) ([]float64, error)
}

// Estimate is a successful prediction.
type Estimate struct {
	Price   float64 `json:"price"`
	Message string  `json:"message"`
}

// Service validates forms and prices them with the loaded model.
type Service struct {
	encoder Encoder
	model   Predictor
}

// NewService creates a Service. Either argument may be nil, in which case
// Estimate fails with artifacts.ErrNotLoaded.
func NewService(enc Encoder, model Predictor) *Service {
	return &Service{encoder: enc, model: model}
}

// FromBundle creates a Service over loaded artifacts.
func FromBundle(b *artifacts.Bundle) *Service {
	if !b.Loaded() {
		return &Service{}
	}
	return NewService(b.Encoder, b.Model)
}

// Ready reports whether the service can price forms.
func (s *Service) Ready() bool {
	return s.encoder != nil && s.model != nil
}

// Estimate validates the form, encodes it and runs the model. Validation failures
// are returned as *ValidationError, unknown categories wrap encoder.ErrInvalidInput.
func (s *Service) Estimate(ctx context.Context, f Form) (*Estimate, error) {
	if verr := Validate(f); verr != nil {
		return nil, verr
	}
	if !s.Ready() {
		return nil, artifacts.ErrNotLoaded
	}

	row, err := s.encoder.Encode(f.Record())
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prices, err := s.model.Predict([][]float64{row})
	if err != nil {
		return nil, err
	}
	if len(prices) != 1 {
		return nil, fmt.Errorf("model returned %d predictions for 1 row", len(prices))
	}
	return &Estimate{Price: prices[0], Message: SuccessMessage(prices[0])}, nil
}

// FormatPrice renders a price with thousands separators and no decimals.
func FormatPrice(price float64) string {
	return message.NewPrinter(language.English).Sprintf("%.0f", price)
}

// SuccessMessage is the text shown with a successful estimate.
func SuccessMessage(price float64) string {
	return fmt.Sprintf("Giá nhà dự đoán: %s VNĐ", FormatPrice(price))
}

// UserMessage maps an Estimate error to the text shown to the user.
func UserMessage(err error) string {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, encoder.ErrInvalidInput):
		return MsgInsufficientData
	case errors.Is(err, artifacts.ErrNotLoaded):
		return MsgNotLoaded
	default:
		return fmt.Sprintf("Lỗi: %v", err)
	}
}
