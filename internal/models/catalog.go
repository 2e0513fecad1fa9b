package models

// Category rows are shared between sellable products (type P) and
// complement items (type I).
type Category struct {
	ID      uint   `gorm:"primaryKey"`
	BrandID uint   `gorm:"not null"`
	Name    string `gorm:"not null"`
	Type    string `gorm:"not null"`
}

const (
	CategoryTypeProduct = "P"
	CategoryTypeItem    = "I"
)

type Product struct {
	ID         uint   `gorm:"primaryKey"`
	BrandID    uint   `gorm:"not null"`
	SubBrandID uint   `gorm:"not null"`
	CategoryID uint   `gorm:"not null"`
	Name       string `gorm:"not null"`
	PosUUID    string `gorm:"column:pos_uuid"`
}

// Item is a complement/add-on attachable to a product on a sale.
type Item struct {
	ID         uint   `gorm:"primaryKey"`
	BrandID    uint   `gorm:"not null"`
	SubBrandID uint   `gorm:"not null"`
	CategoryID uint   `gorm:"not null"`
	Name       string `gorm:"not null"`
	PosUUID    string `gorm:"column:pos_uuid"`
}

type OptionGroup struct {
	ID      uint   `gorm:"primaryKey"`
	BrandID uint   `gorm:"not null"`
	Name    string `gorm:"not null"`
}
