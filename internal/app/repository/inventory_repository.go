package repository

import (
	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(inventory *model.Inventory) error
	FindByProductID(productID uint) (*model.Inventory, error)
	// AdjustQuantity adds delta (possibly negative) to the stock level.
	// The quantity check constraint rejects adjustments below zero.
	AdjustQuantity(productID uint, delta int) error
	SetQuantity(productID uint, quantity int) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(inventory *model.Inventory) error {
	if err := r.db.Create(inventory).Error; err != nil {
		logger.Error("Failed to create inventory", err, map[string]interface{}{
			"product_id": inventory.ProductID,
		})
		return err
	}
	return nil
}

func (r *inventoryRepository) FindByProductID(productID uint) (*model.Inventory, error) {
	var inventory model.Inventory
	if err := r.db.Where("product_id = ?", productID).First(&inventory).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepository) AdjustQuantity(productID uint, delta int) error {
	result := r.db.Model(&model.Inventory{}).Where("product_id = ?", productID).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		logger.Error("Failed to adjust inventory quantity", result.Error, map[string]interface{}{
			"product_id": productID,
			"delta":      delta,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *inventoryRepository) SetQuantity(productID uint, quantity int) error {
	result := r.db.Model(&model.Inventory{}).Where("product_id = ?", productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
