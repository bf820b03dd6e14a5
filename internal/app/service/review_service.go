package service

import (
	"errors"

	"github.com/ikkim/commerce-backend/internal/app/model"
	"github.com/ikkim/commerce-backend/internal/app/repository"
	"github.com/ikkim/commerce-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrDuplicateReview = errors.New("user already reviewed this product")
)

type ReviewService interface {
	CreateReview(productID, userID uint, rating int, title, body string) (*model.Review, error)
	GetProductReviews(productID uint) ([]model.Review, error)
	DeleteReview(id uint) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// CreateReview enforces one review per user per product. The unique index on
// (product_id, user_id) backstops the lookup under concurrent writes.
func (s *reviewService) CreateReview(productID, userID uint, rating int, title, body string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.reviewRepo.FindByProductAndUser(productID, userID); err == nil {
		return nil, ErrDuplicateReview
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &model.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Title:     title,
		Body:      body,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	logger.Info("Review created", map[string]interface{}{
		"product_id": productID,
		"user_id":    userID,
		"rating":     rating,
	})
	return review, nil
}

func (s *reviewService) GetProductReviews(productID uint) ([]model.Review, error) {
	return s.reviewRepo.FindByProductID(productID)
}

func (s *reviewService) DeleteReview(id uint) error {
	return s.reviewRepo.Delete(id)
}
