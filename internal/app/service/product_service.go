package service

import (
	"errors"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/internal/app/repository"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNegativePrice   = errors.New("price must not be negative")
)

type ProductService interface {
	CreateProduct(product *model.Product, categoryIDs []uint) error
	GetProduct(id uint) (*model.Product, error)
	GetProductBySKU(sku string) (*model.Product, error)
	ListByCategory(categoryID uint) ([]model.Product, error)
	ChangePrice(productID uint, newPrice float64, changedByID *uint) error
	SetActive(productID uint, active bool) error
	ReceiveStock(productID uint, delta int) error
	GetStock(productID uint) (*model.Inventory, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	db            *gorm.DB
}

func NewProductService(productRepo repository.ProductRepository, inventoryRepo repository.InventoryRepository, db *gorm.DB) ProductService {
	return &productService{productRepo: productRepo, inventoryRepo: inventoryRepo, db: db}
}

// CreateProduct stores the product, links it to its categories, and opens an
// empty inventory row, in one transaction.
func (s *productService) CreateProduct(product *model.Product, categoryIDs []uint) error {
	if product.Price < 0 {
		return ErrNegativePrice
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			logger.Error("Failed to create product", err, map[string]interface{}{
				"sku": product.SKU,
			})
			return err
		}

		for _, categoryID := range categoryIDs {
			link := model.ProductCategory{ProductID: product.ID, CategoryID: categoryID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}

		inventory := model.Inventory{ProductID: product.ID, Quantity: 0}
		return tx.Create(&inventory).Error
	})
}

func (s *productService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductBySKU(sku string) (*model.Product, error) {
	product, err := s.productRepo.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListByCategory(categoryID uint) ([]model.Product, error) {
	return s.productRepo.FindByCategory(categoryID)
}

// ChangePrice updates the product price and appends the change to the price
// history log as one atomic unit. Setting the current price again is a no-op
// and leaves no history row.
func (s *productService) ChangePrice(productID uint, newPrice float64, changedByID *uint) error {
	if newPrice < 0 {
		return ErrNegativePrice
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if product.Price == newPrice {
			return nil
		}

		entry := model.PriceHistory{
			ProductID:   product.ID,
			OldPrice:    product.Price,
			NewPrice:    newPrice,
			ChangedByID: changedByID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&product).Update("price", newPrice).Error; err != nil {
			return err
		}

		logger.Info("Product price changed", map[string]interface{}{
			"product_id": productID,
			"old_price":  entry.OldPrice,
			"new_price":  newPrice,
		})
		return nil
	})
}

func (s *productService) SetActive(productID uint, active bool) error {
	result := s.db.Model(&model.Product{}).Where("id = ?", productID).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ReceiveStock adds delta to the product's stock level. Negative deltas are
// corrections; the quantity check constraint rejects any adjustment that
// would take stock below zero.
func (s *productService) ReceiveStock(productID uint, delta int) error {
	err := s.inventoryRepo.AdjustQuantity(productID, delta)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	logger.Info("Stock adjusted", map[string]interface{}{
		"product_id": productID,
		"delta":      delta,
	})
	return nil
}

func (s *productService) GetStock(productID uint) (*model.Inventory, error) {
	inventory, err := s.inventoryRepo.FindByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return inventory, nil
}

func (s *productService) DeleteProduct(id uint) error {
	err := s.productRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}
