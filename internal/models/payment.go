package models

import "github.com/shopspring/decimal"

type Payment struct {
	ID            uint            `gorm:"primaryKey"`
	SaleID        uint            `gorm:"not null"`
	PaymentTypeID uint            `gorm:"not null"`
	Value         decimal.Decimal `gorm:"type:numeric(12,2)"`
}
