package postgres

import (
	"context"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetWithFavorites(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).
		Preload("Favorites", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "slug", "price", "images").Order("name ASC")
		}).
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update writes the profile columns. Favorites are managed separately.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("email", "password_hash", "name", "phone", "avatar_path", "is_admin").
		Updates(user).Error
}

func (r *userRepository) AddFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Exec("INSERT INTO user_favorites (user_id, product_id) VALUES (?, ?) ON CONFLICT DO NOTHING", userID, productID).
		Error
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error {
	user := &domain.User{ID: userID}
	return r.db.WithContext(ctx).
		Model(user).
		Association("Favorites").
		Delete(&domain.Product{ID: productID})
}
