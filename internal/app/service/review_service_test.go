package service

import (
	"testing"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/internal/app/repository"
	"github.com/ikkim/commerce-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (ReviewService, *gorm.DB, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	reviewService := NewReviewService(reviewRepo)

	user := &model.User{
		Name:         "Reviewer",
		Email:        "reviewer@example.com",
		PasswordHash: "hash",
		Role:         model.RoleCustomer,
	}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{SKU: "SKU-REVIEWED", Name: "Widget", Price: 10.00, IsActive: true}
	require.NoError(t, testDB.Create(product).Error)

	return reviewService, testDB, user, product
}

func TestReviewService_CreateReview(t *testing.T) {
	reviewService, _, user, product := setupReviewServiceTest(t)

	review, err := reviewService.CreateReview(product.ID, user.ID, 5, "Great", "Works perfectly.")
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	reviewService, _, user, product := setupReviewServiceTest(t)

	for _, rating := range []int{0, -1, 6} {
		_, err := reviewService.CreateReview(product.ID, user.ID, rating, "", "")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d must be rejected", rating)
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	reviewService, _, user, product := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(product.ID, user.ID, 4, "First", "")
	require.NoError(t, err)

	_, err = reviewService.CreateReview(product.ID, user.ID, 2, "Second thoughts", "")
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestReviewService_GetProductReviews(t *testing.T) {
	reviewService, testDB, user, product := setupReviewServiceTest(t)

	other := &model.User{
		Name:         "Other Reviewer",
		Email:        "other@example.com",
		PasswordHash: "hash",
		Role:         model.RoleCustomer,
	}
	require.NoError(t, testDB.Create(other).Error)

	_, err := reviewService.CreateReview(product.ID, user.ID, 5, "Great", "")
	require.NoError(t, err)
	_, err = reviewService.CreateReview(product.ID, other.ID, 3, "Fine", "")
	require.NoError(t, err)

	reviews, err := reviewService.GetProductReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Reviewer", reviews[0].User.Name)
}
