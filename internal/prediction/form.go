package prediction

import (
	"math"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/models"
)

// Upper bounds accepted by the form.
const (
	MaxArea  = 1000.0
	MaxCount = 20
)

// User-facing validation messages, in check order.
const (
	MsgInvalidArea      = "Vui lòng nhập diện tích hợp lý."
	MsgInvalidFloors    = "Vui lòng nhập số tầng hợp lý."
	MsgInvalidBedrooms  = "Vui lòng nhập số phòng ngủ hợp lý."
	MsgInvalidBathrooms = "Vui lòng nhập số nhà vệ sinh hợp lý."
	MsgMissingDistrict  = "Vui lòng chọn quận."
	MsgMissingWard      = "Vui lòng chọn phường."
)

// Form is a submitted prediction request, from the HTML form or the JSON API.
// @Description Form holds the attributes of the property to price.
type Form struct {
	Area      float64 `form:"area" json:"area" example:"100"`
	Floors    int     `form:"floors" json:"floors" example:"2"`
	Bedrooms  int     `form:"bedrooms" json:"bedrooms" example:"3"`
	Bathrooms int     `form:"bathrooms" json:"bathrooms" example:"2"`
	Direction string  `form:"direction" json:"direction" example:"Đông"`
	HouseType string  `form:"house_type" json:"house_type" example:"Nhà ngõ, hẻm"`
	District  string  `form:"district" json:"district" example:"Quận 1"`
	Ward      string  `form:"ward" json:"ward" example:"Phường Tân Định"`
}

// ValidationError is a form that failed the plausibility checks.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate applies the plausibility checks in order and reports the first failure.
func Validate(f Form) *ValidationError {
	switch {
	case math.IsNaN(f.Area) || f.Area <= 0 || f.Area > MaxArea:
		return &ValidationError{Field: "area", Message: MsgInvalidArea}
	case f.Floors <= 0 || f.Floors > MaxCount:
		return &ValidationError{Field: "floors", Message: MsgInvalidFloors}
	case f.Bedrooms < 1 || f.Bedrooms > MaxCount:
		return &ValidationError{Field: "bedrooms", Message: MsgInvalidBedrooms}
	case f.Bathrooms < 1 || f.Bathrooms > MaxCount:
		return &ValidationError{Field: "bathrooms", Message: MsgInvalidBathrooms}
	case f.District == "":
		return &ValidationError{Field: "district", Message: MsgMissingDistrict}
	case f.Ward == "":
		return &ValidationError{Field: "ward", Message: MsgMissingWard}
	}
	return nil
}

// Record converts the form into the record layout the encoder expects.
func (f Form) Record() models.PropertyRecord {
	return models.PropertyRecord{
		Area:      f.Area,
		Floors:    f.Floors,
		Bedrooms:  f.Bedrooms,
		Bathrooms: f.Bathrooms,
		Direction: f.Direction,
		HouseType: f.HouseType,
		Ward:      f.Ward,
		District:  f.District,
	}
}
