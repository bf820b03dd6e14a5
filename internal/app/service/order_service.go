package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/internal/app/repository"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"github.com/ikkim/commerce-backend/pkg/util"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("order line quantity must be positive")
	ErrProductInactive   = errors.New("product is not active")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAddressNotOwned   = errors.New("address does not belong to the user")
	ErrPaymentNotPending = errors.New("payment is not pending")
)

const (
	freeShippingThreshold = 100.0
	flatShippingFee       = 4.99
	taxRate               = 0.08
)

// OrderLine is one requested product/quantity pair for a new order.
type OrderLine struct {
	ProductID uint
	Quantity  int
	Discount  float64
}

type OrderService interface {
	PlaceOrder(userID, shippingAddressID uint, billingAddressID *uint, lines []OrderLine) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	GetOrderByID(userID, orderID uint) (*model.Order, error)
	UpdateOrderStatus(orderID uint, status model.OrderStatus) error
	RecordPayment(orderID uint, method model.PaymentMethod) (*model.Payment, error)
	CompletePayment(paymentID uint) error
}

type orderService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	db          *gorm.DB
}

func NewOrderService(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository, db *gorm.DB) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		db:          db,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// mergeOrderLines folds lines naming the same product into one, summing
// quantities and discounts. Order items key on (order, product), so each
// product may appear at most once per order.
func mergeOrderLines(lines []OrderLine) []OrderLine {
	merged := make([]OrderLine, 0, len(lines))
	index := make(map[uint]int, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Quantity += line.Quantity
			merged[i].Discount += line.Discount
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// PlaceOrder creates an order with its items and decrements inventory as one
// atomic unit. Each item captures the product price at placement time.
func (s *orderService) PlaceOrder(userID, shippingAddressID uint, billingAddressID *uint, lines []OrderLine) (*model.Order, error) {
	logger.Info("Placing order", map[string]interface{}{
		"user_id": userID,
		"lines":   len(lines),
	})

	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}
	lines = mergeOrderLines(lines)

	if err := s.checkAddressOwner(shippingAddressID, userID); err != nil {
		return nil, err
	}
	if billingAddressID != nil {
		if err := s.checkAddressOwner(*billingAddressID, userID); err != nil {
			return nil, err
		}
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order placement, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
		}
	}()

	var (
		subtotal float64
		items    []model.OrderItem
	)

	for _, line := range lines {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, line.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		if !product.IsActive {
			tx.Rollback()
			logger.Warn("Order rejected: product inactive", map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
			})
			return nil, ErrProductInactive
		}

		var inventory model.Inventory
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", product.ID).
			First(&inventory).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInsufficientStock
			}
			return nil, err
		}
		if inventory.Quantity < line.Quantity {
			tx.Rollback()
			logger.Warn("Order rejected: insufficient stock", map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
				"requested":  line.Quantity,
				"available":  inventory.Quantity,
			})
			return nil, ErrInsufficientStock
		}

		if err := tx.Model(&inventory).
			Update("quantity", gorm.Expr("quantity - ?", line.Quantity)).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		subtotal += float64(line.Quantity)*product.Price - line.Discount
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			Discount:  line.Discount,
		})
	}

	subtotal = round2(subtotal)
	shippingFee := flatShippingFee
	if subtotal >= freeShippingThreshold {
		shippingFee = 0
	}
	tax := round2(subtotal * taxRate)

	order := model.Order{
		UserID:            userID,
		ShippingAddressID: shippingAddressID,
		BillingAddressID:  billingAddressID,
		Status:            model.OrderStatusPending,
		Subtotal:          subtotal,
		ShippingFee:       shippingFee,
		Tax:               tax,
		Total:             round2(subtotal + shippingFee + tax),
		Items:             items,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("Order placed", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.Total,
	})
	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) checkAddressOwner(addressID, userID uint) error {
	var address model.Address
	if err := s.db.First(&address, addressID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAddressNotOwned
		}
		return err
	}
	if address.UserID != userID {
		return ErrAddressNotOwned
	}
	return nil
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	return s.orderRepo.FindByUserID(userID)
}

func (s *orderService) GetOrderByID(userID, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(orderID uint, status model.OrderStatus) error {
	err := s.orderRepo.UpdateStatus(orderID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// RecordPayment creates a pending payment over the order total with a fresh
// transaction reference.
func (s *orderService) RecordPayment(orderID uint, method model.PaymentMethod) (*model.Payment, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	payment := &model.Payment{
		OrderID:              order.ID,
		Method:               method,
		Status:               model.PaymentStatusPending,
		Amount:               order.Total,
		TransactionReference: util.NewTransactionReference(),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	logger.Info("Payment recorded", map[string]interface{}{
		"order_id":   orderID,
		"payment_id": payment.ID,
		"reference":  payment.TransactionReference,
	})
	return payment, nil
}

// CompletePayment marks a pending payment completed and moves a pending
// order to processing, atomically. Payments in any other state (failed,
// refunded, already completed) are left alone.
func (s *orderService) CompletePayment(paymentID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var payment model.Payment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, paymentID).Error; err != nil {
			return err
		}
		if payment.Status != model.PaymentStatusPending {
			return ErrPaymentNotPending
		}

		now := time.Now()
		if err := tx.Model(&payment).Updates(map[string]interface{}{
			"status":  model.PaymentStatusCompleted,
			"paid_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&model.Order{}).
			Where("id = ? AND status = ?", payment.OrderID, model.OrderStatusPending).
			Update("status", model.OrderStatusProcessing).Error
	})
}
