package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one order with its nested lines. Financial fields are computed once
// at generation time and stored verbatim; nothing recomputes them at write time.
type Sale struct {
	ID                uint    `gorm:"primaryKey"`
	StoreID           uint    `gorm:"not null"`
	CustomerID        *uint   // nil for walk-in sales
	ChannelID         uint    `gorm:"not null"`
	CustomerName      *string // set only when CustomerID is nil
	CreatedAt         time.Time
	SaleStatusDesc    string          `gorm:"not null"`
	TotalAmountItems  decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalDiscount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalIncrease     decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee       decimal.Decimal `gorm:"type:numeric(12,2)"`
	ServiceTaxFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	ValuePaid         decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProductionSeconds *int
	DeliverySeconds   *int
	DiscountReason    *string
	PeopleQuantity    *int
	Origin            string

	Products []ProductSale `gorm:"foreignKey:SaleID"`
	Delivery *DeliverySale `gorm:"foreignKey:SaleID"`

	// PaymentSplits are resolved against payment_types by description at
	// persistence time; splits whose description does not resolve are dropped.
	PaymentSplits []PaymentSplit `gorm:"-"`
}

const (
	SaleCompleted = "COMPLETED"
	SaleCancelled = "CANCELLED"
)

type ProductSale struct {
	ID         uint            `gorm:"primaryKey"`
	SaleID     uint            `gorm:"not null"`
	ProductID  uint            `gorm:"not null"`
	Quantity   int             `gorm:"not null"`
	BasePrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`

	Items []ItemProductSale `gorm:"foreignKey:ProductSaleID"`
}

type ItemProductSale struct {
	ID              uint  `gorm:"primaryKey"`
	ProductSaleID   uint  `gorm:"not null"`
	ItemID          uint  `gorm:"not null"`
	OptionGroupID   *uint
	Quantity        int             `gorm:"not null"`
	AdditionalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2)"`
	Amount          int
}

// PaymentSplit is the unresolved form of a payments row: the payment type is
// still a description, not an id.
type PaymentSplit struct {
	TypeDescription string
	Value           decimal.Decimal
}
