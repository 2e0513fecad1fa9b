package models

type Channel struct {
	ID          uint   `gorm:"primaryKey"`
	BrandID     uint   `gorm:"not null"`
	Name        string `gorm:"not null"`
	Description string
	Type        string `gorm:"not null"` // P (dine-in) or D (delivery)
}

const (
	ChannelTypeDineIn   = "P"
	ChannelTypeDelivery = "D"
)

type PaymentType struct {
	ID          uint   `gorm:"primaryKey"`
	BrandID     uint   `gorm:"not null"`
	Description string `gorm:"not null"`
}
