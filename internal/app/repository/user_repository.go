package repository

import (
	"errors"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrUserHasOrders blocks user deletion while orders reference the user.
var ErrUserHasOrders = errors.New("user has orders and cannot be deleted")

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindAll() ([]model.User, error)
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Addresses").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		logger.Error("Failed to update user", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return err
	}
	return nil
}

// Delete removes a user and its dependents in one transaction: orders block
// the delete, addresses and reviews go with the user, and price-history
// attribution is detached.
func (r *userRepository) Delete(id uint) error {
	logger.Debug("Deleting user", map[string]interface{}{"user_id": id})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var orderCount int64
		if err := tx.Model(&model.Order{}).Where("user_id = ?", id).Count(&orderCount).Error; err != nil {
			return err
		}
		if orderCount > 0 {
			logger.Warn("User delete blocked by existing orders", map[string]interface{}{
				"user_id": id,
				"orders":  orderCount,
			})
			return ErrUserHasOrders
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PriceHistory{}).Where("changed_by_id = ?", id).
			Update("changed_by_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
