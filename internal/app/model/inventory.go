package model

import (
	"time"
)

// Inventory is one-to-one with Product via the unique product_id index.
type Inventory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ProductID uint      `gorm:"uniqueIndex;not null" json:"product_id"`
	Quantity  int       `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Location  string    `gorm:"size:100" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventories"
}
