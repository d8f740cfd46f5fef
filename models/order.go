package models

import "time"

type OrderStatus string

const (
	// Order statuses, advanced one way by the admin panel
	OrderStatusPending    OrderStatus = "Pending"    // Order placed, awaiting handling
	OrderStatusProcessing OrderStatus = "Processing" // Being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusCompleted  OrderStatus = "Completed"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled before completion
)

// CustomerDetails is embedded in Order; all fields are required at checkout.
type CustomerDetails struct {
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Address string `gorm:"not null" json:"address"`
}

type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	CustomerDetails CustomerDetails `gorm:"embedded;embeddedPrefix:customer_" json:"customerDetails"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64         `json:"total"`
	Currency        Currency        `gorm:"type:VARCHAR(3)" json:"currency"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ReviewSubmitted bool            `json:"reviewSubmitted"`
}

// OrderItem is an immutable snapshot of a cart line at checkout time.
type OrderItem struct {
	ID           uint     `gorm:"primaryKey" json:"-"`
	OrderID      string   `gorm:"index" json:"-"`
	ProductID    string   `json:"id"`
	ProductName  string   `json:"name"`
	ProductImage string   `json:"imageUrl"`
	Price        float64  `json:"price"`
	Currency     Currency `json:"currency"`
	Quantity     int      `json:"quantity"`
}
