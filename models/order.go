package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order belongs to the staff member identified by Username. TotalAmount is
// computed once at creation from the item snapshots and stored redundantly;
// it is not recomputed on later status changes.
//
// Status starts at "Pending" and is afterwards set verbatim by an admin
// (observed values: Pending, Preparing, Ready, Delivered, Cancelled).
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Username    string          `gorm:"type:varchar(50);not null;index" json:"username"`
	OrderDate   time.Time       `gorm:"not null" json:"orderDate"`
	Status      string          `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0.00" json:"totalAmount"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
}
