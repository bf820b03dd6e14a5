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

func setupInventoryTest(t *testing.T) (*gorm.DB, InventoryRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewInventoryRepository(testDB)
	return testDB, repo
}

func TestInventoryRepository_Create(t *testing.T) {
	testDB, repo := setupInventoryTest(t)
	defer db.CleanupTestDB(testDB)

	product := seedProduct(t, testDB, "SKU-INV", 10.00)

	inventory := &model.Inventory{ProductID: product.ID, Quantity: 5, Location: "WH-EAST"}
	require.NoError(t, repo.Create(inventory))
	assert.NotZero(t, inventory.ID)

	// One inventory row per product.
	second := &model.Inventory{ProductID: product.ID, Quantity: 9}
	assert.Error(t, repo.Create(second))
}

func TestInventoryRepository_FindByProductID(t *testing.T) {
	testDB, repo := setupInventoryTest(t)
	defer db.CleanupTestDB(testDB)

	product := seedProduct(t, testDB, "SKU-LOOKUP", 10.00)
	require.NoError(t, repo.Create(&model.Inventory{ProductID: product.ID, Quantity: 12, Location: "WH-WEST"}))

	inventory, err := repo.FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, inventory.Quantity)
	assert.Equal(t, "WH-WEST", inventory.Location)

	_, err = repo.FindByProductID(9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInventoryRepository_AdjustQuantity(t *testing.T) {
	testDB, repo := setupInventoryTest(t)
	defer db.CleanupTestDB(testDB)

	product := seedProduct(t, testDB, "SKU-ADJUST", 10.00)
	require.NoError(t, repo.Create(&model.Inventory{ProductID: product.ID, Quantity: 10}))

	require.NoError(t, repo.AdjustQuantity(product.ID, 5))
	require.NoError(t, repo.AdjustQuantity(product.ID, -8))

	inventory, err := repo.FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, inventory.Quantity)
}

func TestInventoryRepository_AdjustQuantity_RejectsBelowZero(t *testing.T) {
	testDB, repo := setupInventoryTest(t)
	defer db.CleanupTestDB(testDB)

	product := seedProduct(t, testDB, "SKU-FLOOR", 10.00)
	require.NoError(t, repo.Create(&model.Inventory{ProductID: product.ID, Quantity: 3}))

	assert.Error(t, repo.AdjustQuantity(product.ID, -4), "stock can never go negative")

	inventory, err := repo.FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, inventory.Quantity, "rejected adjustment leaves stock untouched")
}

func TestInventoryRepository_AdjustQuantity_NotFound(t *testing.T) {
	testDB, repo := setupInventoryTest(t)
	defer db.CleanupTestDB(testDB)

	err := repo.AdjustQuantity(9999, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInventoryRepository_SetQuantity(t *testing.T) {
	testDB, repo := setupInventoryTest(t)
	defer db.CleanupTestDB(testDB)

	product := seedProduct(t, testDB, "SKU-RECOUNT", 10.00)
	require.NoError(t, repo.Create(&model.Inventory{ProductID: product.ID, Quantity: 50}))

	require.NoError(t, repo.SetQuantity(product.ID, 0))

	inventory, err := repo.FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, inventory.Quantity)

	err = repo.SetQuantity(9999, 5)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
