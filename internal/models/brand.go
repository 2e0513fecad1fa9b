package models

// Brand is the tenant every other row hangs off. The schema pre-exists; these
// structs only describe it for inserts.
type Brand struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

type SubBrand struct {
	ID      uint   `gorm:"primaryKey"`
	BrandID uint   `gorm:"not null"`
	Name    string `gorm:"not null"`
}
