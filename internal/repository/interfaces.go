package repository

import (
	"context"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetWithFavorites(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	AddFavorite(ctx context.Context, userID, productID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, productID uuid.UUID) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetAll(ctx context.Context) ([]*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, query domain.ProductQuery) ([]*domain.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error)
	GetByCategoryName(ctx context.Context, categoryName string, excludeID uuid.UUID) ([]*domain.Product, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetAll(ctx context.Context) ([]*domain.Review, error)
	AverageRating(ctx context.Context, productID uuid.UUID) (*float64, error)
}

type OrderRepository interface {
	// Create inserts the order and its items in one transaction. It fails
	// with ErrMissingProducts when an item references an unknown product.
	Create(ctx context.Context, order *domain.Order) error
	GetAll(ctx context.Context) ([]*domain.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error)
}

type StatisticsRepository interface {
	Totals(ctx context.Context) (*domain.StoreTotals, error)
}

type Repositories struct {
	User       UserRepository
	Category   CategoryRepository
	Product    ProductRepository
	Review     ReviewRepository
	Order      OrderRepository
	Statistics StatisticsRepository
}
