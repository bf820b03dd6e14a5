package model

import (
	"time"
)

// PriceHistory is an append-only audit log: rows are never updated and only
// disappear through the product cascade.
type PriceHistory struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	OldPrice    float64   `gorm:"not null" json:"old_price"`
	NewPrice    float64   `gorm:"not null" json:"new_price"`
	ChangedByID *uint     `gorm:"index" json:"changed_by_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	ChangedBy *User `gorm:"foreignKey:ChangedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"changed_by,omitempty"`
}

func (PriceHistory) TableName() string {
	return "price_histories"
}
