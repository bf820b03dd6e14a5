package repository

import (
	"errors"
	"testing"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*gorm.DB, OrderRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewOrderRepository(testDB)
	return testDB, repo
}

func TestOrderRepository_CreateWithItems(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user := seedUser(t, testDB, "orders@example.com")
	address := seedAddress(t, testDB, user.ID)
	first := seedProduct(t, testDB, "SKU-A", 10.00)
	second := seedProduct(t, testDB, "SKU-B", 20.00)

	order := &model.Order{
		UserID:            user.ID,
		ShippingAddressID: address.ID,
		Status:            model.OrderStatusPending,
		Subtotal:          50.00,
		Total:             50.00,
		Items: []model.OrderItem{
			{ProductID: first.ID, Quantity: 1, UnitPrice: 10.00},
			{ProductID: second.ID, Quantity: 2, UnitPrice: 20.00},
		},
	}
	require.NoError(t, repo.Create(order))
	require.NotZero(t, order.ID)

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	assert.Equal(t, "SKU-A", found.Items[0].Product.SKU)
	assert.Equal(t, "SKU-B", found.Items[1].Product.SKU)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user := seedUser(t, testDB, "status@example.com")
	address := seedAddress(t, testDB, user.ID)
	product := seedProduct(t, testDB, "SKU-STATUS", 15.00)
	order := seedOrder(t, testDB, user.ID, address.ID, product, 1)

	require.NoError(t, repo.UpdateStatus(order.ID, model.OrderStatusShipped))

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, found.Status)

	err = repo.UpdateStatus(9999, model.OrderStatusShipped)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestOrderRepository_Delete_CascadesItemsAndPayments(t *testing.T) {
	testDB, repo := setupOrderTest(t)
	defer db.CleanupTestDB(testDB)

	user := seedUser(t, testDB, "deleter@example.com")
	address := seedAddress(t, testDB, user.ID)
	product := seedProduct(t, testDB, "SKU-GONE", 45.00)
	order := seedOrder(t, testDB, user.ID, address.ID, product, 1)

	payment := &model.Payment{
		OrderID:              order.ID,
		Method:               model.PaymentMethodCreditCard,
		Status:               model.PaymentStatusPending,
		Amount:               45.00,
		TransactionReference: "TXN-TEST-DELETE",
	}
	require.NoError(t, testDB.Create(payment).Error)

	require.NoError(t, repo.Delete(order.ID))

	var itemCount, paymentCount int64
	require.NoError(t, testDB.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
	require.NoError(t, testDB.Model(&model.Payment{}).Where("order_id = ?", order.ID).Count(&paymentCount).Error)
	assert.Zero(t, itemCount)
	assert.Zero(t, paymentCount)

	var productCount int64
	require.NoError(t, testDB.Model(&model.Product{}).Where("id = ?", product.ID).Count(&productCount).Error)
	assert.EqualValues(t, 1, productCount, "the ordered product is untouched")
}
