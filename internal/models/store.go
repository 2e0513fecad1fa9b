package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Store struct {
	ID            uint   `gorm:"primaryKey"`
	BrandID       uint   `gorm:"not null"`
	SubBrandID    uint   `gorm:"not null"`
	Name          string `gorm:"not null"`
	City          string
	State         string
	District      string
	AddressStreet string
	AddressNumber int
	Latitude      decimal.Decimal `gorm:"type:numeric(10,6)"`
	Longitude     decimal.Decimal `gorm:"type:numeric(10,6)"`
	IsActive      bool
	IsOwn         bool
	CreationDate  time.Time `gorm:"type:date"`
	CreatedAt     time.Time
}
