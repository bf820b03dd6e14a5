package model

import (
	"time"
)

type PaymentMethod string
type PaymentStatus string

const (
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodPaypal         PaymentMethod = "paypal"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID                   uint          `gorm:"primarykey" json:"id"`
	OrderID              uint          `gorm:"not null;index" json:"order_id"`
	Method               PaymentMethod `gorm:"type:varchar(30);not null" json:"method"`
	Status               PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Amount               float64       `gorm:"not null;check:amount >= 0" json:"amount"`
	TransactionReference string        `gorm:"size:100;uniqueIndex;not null" json:"transaction_reference"`
	PaidAt               *time.Time    `json:"paid_at,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
