package repository

import (
	"errors"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrAddressInUse blocks deletion while an order ships to the address.
var ErrAddressInUse = errors.New("address is used as a shipping address and cannot be deleted")

type AddressRepository interface {
	Create(address *model.Address) error
	FindByID(id uint) (*model.Address, error)
	FindByUserID(userID uint) ([]model.Address, error)
	Update(address *model.Address) error
	Delete(id uint) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *model.Address) error {
	if err := r.db.Create(address).Error; err != nil {
		logger.Error("Failed to create address", err, map[string]interface{}{
			"user_id": address.UserID,
		})
		return err
	}
	return nil
}

func (r *addressRepository) FindByID(id uint) (*model.Address, error) {
	var address model.Address
	if err := r.db.First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) FindByUserID(userID uint) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Update(address *model.Address) error {
	if err := r.db.Save(address).Error; err != nil {
		logger.Error("Failed to update address", err, map[string]interface{}{
			"address_id": address.ID,
		})
		return err
	}
	return nil
}

// Delete rejects the delete while the address ships an order, and clears
// billing references so those orders survive with the link severed.
func (r *addressRepository) Delete(id uint) error {
	logger.Debug("Deleting address", map[string]interface{}{"address_id": id})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var shippingCount int64
		if err := tx.Model(&model.Order{}).Where("shipping_address_id = ?", id).
			Count(&shippingCount).Error; err != nil {
			return err
		}
		if shippingCount > 0 {
			logger.Warn("Address delete blocked by orders", map[string]interface{}{
				"address_id": id,
				"orders":     shippingCount,
			})
			return ErrAddressInUse
		}

		if err := tx.Model(&model.Order{}).Where("billing_address_id = ?", id).
			Update("billing_address_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Address{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
