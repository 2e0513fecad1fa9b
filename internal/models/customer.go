package models

import "time"

type Customer struct {
	ID                     uint   `gorm:"primaryKey"`
	CustomerName           string `gorm:"not null"`
	Email                  string
	PhoneNumber            string
	CPF                    string `gorm:"column:cpf"`
	BirthDate              time.Time `gorm:"type:date"`
	Gender                 string
	AgreeTerms             bool
	ReceivePromotionsEmail bool
	RegistrationOrigin     string
	CreatedAt              time.Time
}
