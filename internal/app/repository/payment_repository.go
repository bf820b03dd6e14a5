package repository

import (
	"time"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *model.Payment) error
	FindByOrderID(orderID uint) ([]model.Payment, error)
	FindByTransactionReference(ref string) (*model.Payment, error)
	MarkCompleted(id uint, paidAt time.Time) error
	UpdateStatus(id uint, status model.PaymentStatus) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *model.Payment) error {
	logger.Debug("Creating payment", map[string]interface{}{
		"order_id":  payment.OrderID,
		"method":    payment.Method,
		"reference": payment.TransactionReference,
	})

	if err := r.db.Create(payment).Error; err != nil {
		logger.Error("Failed to create payment", err, map[string]interface{}{
			"order_id":  payment.OrderID,
			"reference": payment.TransactionReference,
		})
		return err
	}
	return nil
}

func (r *paymentRepository) FindByOrderID(orderID uint) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.Where("order_id = ?", orderID).Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByTransactionReference(ref string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.Where("transaction_reference = ?", ref).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) MarkCompleted(id uint, paidAt time.Time) error {
	result := r.db.Model(&model.Payment{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":  model.PaymentStatusCompleted,
		"paid_at": paidAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *paymentRepository) UpdateStatus(id uint, status model.PaymentStatus) error {
	result := r.db.Model(&model.Payment{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
