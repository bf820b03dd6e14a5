package repository

import (
	"errors"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrProductOrdered blocks product deletion while order items reference it:
// order history must keep pointing at a real product row.
var ErrProductOrdered = errors.New("product appears in orders and cannot be deleted")

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uint) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindAll() ([]model.Product, error)
	FindByCategory(categoryID uint) ([]model.Product, error)
	AttachCategory(productID, categoryID uint) error
	DetachCategory(productID, categoryID uint) error
	Update(product *model.Product) error
	Delete(id uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product", map[string]interface{}{
		"sku":  product.SKU,
		"name": product.Name,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"sku": product.SKU,
		})
		return err
	}
	return nil
}

func (r *productRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Product{}).
		Preload("Supplier").
		Preload("Images").
		Preload("Inventory")
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	if err := r.baseQuery().Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.baseQuery().Order("products.id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindByCategory(categoryID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.baseQuery().
		Joins("JOIN product_categories ON product_categories.product_id = products.id").
		Where("product_categories.category_id = ?", categoryID).
		Order("products.id").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) AttachCategory(productID, categoryID uint) error {
	link := model.ProductCategory{ProductID: productID, CategoryID: categoryID}
	if err := r.db.Create(&link).Error; err != nil {
		logger.Error("Failed to attach category", err, map[string]interface{}{
			"product_id":  productID,
			"category_id": categoryID,
		})
		return err
	}
	return nil
}

func (r *productRepository) DetachCategory(productID, categoryID uint) error {
	return r.db.
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		Delete(&model.ProductCategory{}).Error
}

func (r *productRepository) Update(product *model.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

// Delete refuses while order items reference the product, then removes the
// product together with its images, inventory, reviews, category links, and
// price history in one transaction.
func (r *productRepository) Delete(id uint) error {
	logger.Debug("Deleting product", map[string]interface{}{"product_id": id})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var orderItemCount int64
		if err := tx.Model(&model.OrderItem{}).Where("product_id = ?", id).
			Count(&orderItemCount).Error; err != nil {
			return err
		}
		if orderItemCount > 0 {
			logger.Warn("Product delete blocked by order items", map[string]interface{}{
				"product_id":  id,
				"order_items": orderItemCount,
			})
			return ErrProductOrdered
		}

		for _, dependent := range []interface{}{
			&model.ProductCategory{},
			&model.ProductImage{},
			&model.Inventory{},
			&model.Review{},
			&model.PriceHistory{},
		} {
			if err := tx.Where("product_id = ?", id).Delete(dependent).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
