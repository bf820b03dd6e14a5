package model

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID                uint        `gorm:"primarykey" json:"id"`
	UserID            uint        `gorm:"not null;index" json:"user_id"`
	ShippingAddressID uint        `gorm:"not null;index" json:"shipping_address_id"`
	BillingAddressID  *uint       `gorm:"index" json:"billing_address_id,omitempty"`
	Status            OrderStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal          float64     `gorm:"not null;check:subtotal >= 0" json:"subtotal"`
	ShippingFee       float64     `gorm:"not null;default:0;check:shipping_fee >= 0" json:"shipping_fee"`
	Tax               float64     `gorm:"not null;default:0;check:tax >= 0" json:"tax"`
	Total             float64     `gorm:"not null;check:total >= 0" json:"total"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	User            User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShippingAddress Address     `gorm:"foreignKey:ShippingAddressID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"shipping_address,omitempty"`
	BillingAddress  *Address    `gorm:"foreignKey:BillingAddressID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"billing_address,omitempty"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty"`
	Payments        []Payment   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"payments,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem keys on (order, product). UnitPrice is the price captured at
// placement time and is never rewritten afterwards.
type OrderItem struct {
	OrderID   uint      `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint      `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	Quantity  int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	UnitPrice float64   `gorm:"not null;check:unit_price >= 0" json:"unit_price"`
	Discount  float64   `gorm:"not null;default:0;check:discount >= 0" json:"discount"`
	CreatedAt time.Time `json:"created_at"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
