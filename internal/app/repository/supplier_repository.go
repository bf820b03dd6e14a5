package repository

import (
	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindByID(id uint) (*model.Supplier, error)
	FindAll() ([]model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uint) error
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(supplier *model.Supplier) error {
	if err := r.db.Create(supplier).Error; err != nil {
		logger.Error("Failed to create supplier", err, map[string]interface{}{
			"name": supplier.Name,
		})
		return err
	}
	return nil
}

func (r *supplierRepository) FindByID(id uint) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.First(&supplier, id).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := r.db.Order("id").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *supplierRepository) Update(supplier *model.Supplier) error {
	if err := r.db.Save(supplier).Error; err != nil {
		logger.Error("Failed to update supplier", err, map[string]interface{}{
			"supplier_id": supplier.ID,
		})
		return err
	}
	return nil
}

// Delete detaches the supplier's products, then removes the supplier.
// Products survive with supplier_id cleared.
func (r *supplierRepository) Delete(id uint) error {
	logger.Debug("Deleting supplier", map[string]interface{}{"supplier_id": id})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).Where("supplier_id = ?", id).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Supplier{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
