package models

import "github.com/shopspring/decimal"

// OrderItem snapshots the meal name and unit price at order time, so later
// menu edits never change what an existing order shows or costs. MealID is a
// loose reference to the menu row and is not enforced as a foreign key.
type OrderItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"not null;index" json:"-"`
	MealID   uint            `gorm:"not null" json:"mealId"`
	MealName string          `gorm:"type:varchar(255);not null" json:"mealName"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
