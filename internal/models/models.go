package models

import "time"

// Column names the encoder and model were fitted with. The order is part of the
// feature vector layout and must not change.
const (
	ColumnArea      = "Diện tích"
	ColumnFloors    = "Số tầng"
	ColumnBedrooms  = "Số phòng ngủ"
	ColumnBathrooms = "Số nhà vệ sinh"

	ColumnDirection = "Hướng cửa chính"
	ColumnHouseType = "Loại hình nhà ở"
	ColumnWard      = "Tên phường"
	ColumnDistrict  = "Quận"
)

// NumericColumns lists the numeric feature columns in feature-vector order.
var NumericColumns = []string{ColumnArea, ColumnFloors, ColumnBedrooms, ColumnBathrooms}

// CategoricalColumns lists the categorical feature columns in feature-vector order.
var CategoricalColumns = []string{ColumnDirection, ColumnHouseType, ColumnWard, ColumnDistrict}

// PropertyRecord is a single property described by the attributes the model was trained on.
// @Description PropertyRecord holds the numeric and categorical attributes of one property.
type PropertyRecord struct {
	Area      float64 `json:"area"`
	Floors    int     `json:"floors"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Direction string  `json:"direction"`
	HouseType string  `json:"house_type"`
	Ward      string  `json:"ward"`
	District  string  `json:"district"`
}

// Numeric returns the numeric attributes in NumericColumns order.
func (p PropertyRecord) Numeric() []float64 {
	return []float64{p.Area, float64(p.Floors), float64(p.Bedrooms), float64(p.Bathrooms)}
}

// Categorical returns the categorical attributes in CategoricalColumns order.
func (p PropertyRecord) Categorical() []string {
	return []string{p.Direction, p.HouseType, p.Ward, p.District}
}

// District is a row of the reference table of Ho Chi Minh City districts.
type District struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;unique"`
	Position  int       `json:"position" gorm:"not null"`
	Wards     []Ward    `json:"wards,omitempty" gorm:"foreignKey:DistrictID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Ward is a row of the reference table; wards are ordered per district by Position.
type Ward struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	DistrictID uint   `json:"district_id" gorm:"not null;uniqueIndex:idx_district_ward_name"`
	Name       string `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_district_ward_name"`
	Position   int    `json:"position" gorm:"not null"`
}
