package service

import (
	"context"
	"strings"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
	"github.com/google/uuid"
)

type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

type CreateReviewInput struct {
	Rating int
	Text   string
}

func (s *ReviewService) Create(ctx context.Context, userID, productID uuid.UUID, input CreateReviewInput) (*domain.Review, error) {
	if !domain.ValidRating(input.Rating) {
		return nil, invalid(domain.ErrInvalidRating)
	}

	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	review := &domain.Review{
		ID:        uuid.New(),
		Rating:    input.Rating,
		Text:      strings.TrimSpace(input.Text),
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// AverageForProduct returns nil when the product has no reviews.
func (s *ReviewService) AverageForProduct(ctx context.Context, productID uuid.UUID) (*float64, error) {
	return s.reviewRepo.AverageRating(ctx, productID)
}

func (s *ReviewService) GetAll(ctx context.Context) ([]*domain.Review, error) {
	return s.reviewRepo.GetAll(ctx)
}
