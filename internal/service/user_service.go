package service

import (
	"context"
	"errors"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	hasher      *PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, productRepo repository.ProductRepository, hasher *PasswordHasher) *UserService {
	return &UserService{
		userRepo:    userRepo,
		productRepo: productRepo,
		hasher:      hasher,
	}
}

// UpdateProfileInput leaves a field unchanged when its pointer is nil. An
// empty password also keeps the current one.
type UpdateProfileInput struct {
	Email      string
	Password   *string
	Name       *string
	Phone      *string
	AvatarPath *string
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	return user, userErr(err)
}

// Profile returns the user with their favorite products.
func (s *UserService) Profile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetWithFavorites(ctx, id)
	return user, userErr(err)
}

func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)

	owner, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil && owner.ID != id:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Email = email
	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.AvatarPath != nil {
		user.AvatarPath = *input.AvatarPath
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// ToggleFavorite adds the product to the user's favorites, or removes it when
// it is already there.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	user, err := s.userRepo.GetWithFavorites(ctx, userID)
	if err != nil {
		return userErr(err)
	}

	if user.HasFavorite(productID) {
		return s.userRepo.RemoveFavorite(ctx, userID, productID)
	}

	exists, err := s.productRepo.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}
	return s.userRepo.AddFavorite(ctx, userID, productID)
}

func userErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
