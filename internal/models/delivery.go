package models

import "github.com/shopspring/decimal"

type DeliverySale struct {
	ID           uint   `gorm:"primaryKey"`
	SaleID       uint   `gorm:"not null"`
	CourierName  string
	CourierPhone string
	CourierType  string
	DeliveryType string
	Status       string
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(12,2)"`
	CourierFee   decimal.Decimal `gorm:"type:numeric(12,2)"`

	// Address needs both SaleID and DeliverySaleID, which only exist after the
	// sale graph is inserted, so it is persisted in a second pass.
	Address *DeliveryAddress `gorm:"-"`
}

const DeliveryStatusDelivered = "DELIVERED"

var (
	DeliveryTypes = []string{"DELIVERY", "TAKEOUT", "INDOOR"}
	CourierTypes  = []string{"PLATFORM", "OWN", "THIRD_PARTY"}
)

type DeliveryAddress struct {
	ID             uint `gorm:"primaryKey"`
	SaleID         uint `gorm:"not null"`
	DeliverySaleID uint `gorm:"not null"`
	Street         string
	Number         string
	Complement     *string
	Neighborhood   string
	City           string
	State          string
	PostalCode     string
	Latitude       float64
	Longitude      float64
}
