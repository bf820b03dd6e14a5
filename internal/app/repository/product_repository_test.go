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

func setupProductTest(t *testing.T) (*gorm.DB, ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewProductRepository(testDB)
	return testDB, repo
}

func TestProductRepository_Create(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	product := &model.Product{
		SKU:      "SKU-0001",
		Name:     "Widget",
		Price:    9.99,
		IsActive: true,
	}
	require.NoError(t, repo.Create(product))
	assert.NotZero(t, product.ID)

	duplicate := &model.Product{SKU: "SKU-0001", Name: "Widget Clone", Price: 5.00}
	assert.Error(t, repo.Create(duplicate), "duplicate SKU must be rejected")
}

func TestProductRepository_FindBySKU(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	created := seedProduct(t, testDB, "SKU-FIND", 12.50)
	require.NoError(t, testDB.Create(&model.Inventory{ProductID: created.ID, Quantity: 7}).Error)

	found, err := repo.FindBySKU("SKU-FIND")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Inventory)
	assert.Equal(t, 7, found.Inventory.Quantity)
}

func TestProductRepository_FindByCategory(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	category := &model.Category{Name: "Gadgets"}
	require.NoError(t, testDB.Create(category).Error)
	other := &model.Category{Name: "Books"}
	require.NoError(t, testDB.Create(other).Error)

	inCategory := seedProduct(t, testDB, "SKU-IN", 10.00)
	outside := seedProduct(t, testDB, "SKU-OUT", 20.00)
	require.NoError(t, repo.AttachCategory(inCategory.ID, category.ID))
	require.NoError(t, repo.AttachCategory(outside.ID, other.ID))

	products, err := repo.FindByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, inCategory.ID, products[0].ID)
}

func TestProductRepository_AttachDetachCategory(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	category := &model.Category{Name: "Tools"}
	require.NoError(t, testDB.Create(category).Error)
	product := seedProduct(t, testDB, "SKU-LINK", 15.00)

	require.NoError(t, repo.AttachCategory(product.ID, category.ID))
	assert.Error(t, repo.AttachCategory(product.ID, category.ID), "duplicate link must be rejected")

	require.NoError(t, repo.DetachCategory(product.ID, category.ID))

	var linkCount int64
	require.NoError(t, testDB.Model(&model.ProductCategory{}).
		Where("product_id = ?", product.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)
}

func TestProductRepository_Delete_CascadesDependents(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	user := seedUser(t, testDB, "reviewer@example.com")
	category := &model.Category{Name: "Doomed"}
	require.NoError(t, testDB.Create(category).Error)

	product := seedProduct(t, testDB, "SKU-DOOMED", 30.00)
	require.NoError(t, repo.AttachCategory(product.ID, category.ID))
	require.NoError(t, testDB.Create(&model.Inventory{ProductID: product.ID, Quantity: 3}).Error)
	require.NoError(t, testDB.Create(&model.ProductImage{ProductID: product.ID, URL: "https://cdn.example.com/doomed.jpg"}).Error)
	require.NoError(t, testDB.Create(&model.Review{ProductID: product.ID, UserID: user.ID, Rating: 5}).Error)
	require.NoError(t, testDB.Create(&model.PriceHistory{ProductID: product.ID, OldPrice: 30.00, NewPrice: 25.00}).Error)

	require.NoError(t, repo.Delete(product.ID))

	for _, dependent := range []interface{}{
		&model.ProductCategory{},
		&model.ProductImage{},
		&model.Inventory{},
		&model.Review{},
		&model.PriceHistory{},
	} {
		var count int64
		require.NoError(t, testDB.Model(dependent).Where("product_id = ?", product.ID).Count(&count).Error)
		assert.Zero(t, count, "%T rows should be deleted with the product", dependent)
	}

	var categoryCount int64
	require.NoError(t, testDB.Model(&model.Category{}).Where("id = ?", category.ID).Count(&categoryCount).Error)
	assert.EqualValues(t, 1, categoryCount, "category itself must survive the product delete")
}

func TestProductRepository_Delete_BlockedByOrderItems(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	user := seedUser(t, testDB, "customer@example.com")
	address := seedAddress(t, testDB, user.ID)
	product := seedProduct(t, testDB, "SKU-SOLD", 40.00)
	seedOrder(t, testDB, user.ID, address.ID, product, 2)

	err := repo.Delete(product.ID)
	assert.True(t, errors.Is(err, ErrProductOrdered))

	var productCount int64
	require.NoError(t, testDB.Model(&model.Product{}).Where("id = ?", product.ID).Count(&productCount).Error)
	assert.EqualValues(t, 1, productCount)
}
