package models

import "time"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyPKR Currency = "PKR"
)

// ValidCurrency reports whether s is one of the supported currency codes.
func ValidCurrency(s string) bool {
	return s == string(CurrencyUSD) || s == string(CurrencyPKR)
}

type Product struct {
	ID              string   `gorm:"primaryKey" json:"id"`
	Name            string   `gorm:"not null" json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"imageUrl"`
	Price           float64  `gorm:"not null" json:"price"`
	Stock           int      `json:"stock"`
	Currency        Currency `gorm:"type:VARCHAR(3);default:'USD'" json:"currency"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
