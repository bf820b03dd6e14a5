package repository

import (
	"testing"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Shared row builders for the repository tests. Each returns the persisted
// record so callers can wire foreign keys.

func seedUser(t *testing.T, gdb *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         model.RoleCustomer,
	}
	require.NoError(t, gdb.Create(user).Error)
	return user
}

func seedAddress(t *testing.T, gdb *gorm.DB, userID uint) *model.Address {
	t.Helper()
	address := &model.Address{
		UserID:  userID,
		Street:  "1 Main St",
		City:    "Springfield",
		Country: "USA",
	}
	require.NoError(t, gdb.Create(address).Error)
	return address
}

func seedProduct(t *testing.T, gdb *gorm.DB, sku string, price float64) *model.Product {
	t.Helper()
	product := &model.Product{
		SKU:      sku,
		Name:     "Test Product " + sku,
		Price:    price,
		IsActive: true,
	}
	require.NoError(t, gdb.Create(product).Error)
	return product
}

func seedOrder(t *testing.T, gdb *gorm.DB, userID, addressID uint, product *model.Product, quantity int) *model.Order {
	t.Helper()
	subtotal := product.Price * float64(quantity)
	order := &model.Order{
		UserID:            userID,
		ShippingAddressID: addressID,
		Status:            model.OrderStatusPending,
		Subtotal:          subtotal,
		Total:             subtotal,
		Items: []model.OrderItem{
			{ProductID: product.ID, Quantity: quantity, UnitPrice: product.Price},
		},
	}
	require.NoError(t, gdb.Create(order).Error)
	return order
}
