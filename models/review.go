package models

import "time"

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "Pending"
	ReviewStatusApproved ReviewStatus = "Approved"
	ReviewStatusRejected ReviewStatus = "Rejected"
)

// Review is customer feedback tied to one completed order. OrderID is advisory
// only; no foreign-key constraint is enforced so imported data with dangling
// references still loads.
type Review struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	OrderID      string       `gorm:"index" json:"orderId"`
	CustomerName string       `json:"customerName"`
	Rating       int          `json:"rating"`
	Comment      string       `json:"comment"`
	CreatedAt    time.Time    `json:"createdAt"`
	Status       ReviewStatus `gorm:"type:VARCHAR(10);default:'Pending'" json:"status"`
}
