package models

import "time"

// CartItem is one line of a session cart. Product fields are snapshotted at the
// time the line is created so the cart keeps displaying what was added even if
// the catalog entry changes underneath it.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	SessionID    string    `gorm:"index;not null" json:"-"`
	ProductID    string    `gorm:"index;not null" json:"id"`
	ProductName  string    `json:"name"`
	ProductImage string    `json:"imageUrl"`
	Price        float64   `json:"price"`
	Currency     Currency  `json:"currency"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"-"`
}

// WishlistItem is a session-scoped bookmark of a catalog product.
type WishlistItem struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	SessionID    string    `gorm:"index;not null" json:"-"`
	ProductID    string    `gorm:"index;not null" json:"id"`
	ProductName  string    `json:"name"`
	ProductImage string    `json:"imageUrl"`
	Price        float64   `json:"price"`
	Currency     Currency  `json:"currency"`
	AddedAt      time.Time `json:"-"`
}
