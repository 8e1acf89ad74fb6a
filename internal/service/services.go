package service

import (
	"github.com/dom/storefront-api/internal/config"
	"github.com/dom/storefront-api/internal/repository"
)

type Services struct {
	Auth       *AuthService
	User       *UserService
	Category   *CategoryService
	Product    *ProductService
	Review     *ReviewService
	Order      *OrderService
	Statistics *StatisticsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, hasher *PasswordHasher, publisher OrderPublisher) *Services {
	tokens := NewTokenIssuer(cfg)

	return &Services{
		Auth:       NewAuthService(repos.User, tokens, hasher),
		User:       NewUserService(repos.User, repos.Product, hasher),
		Category:   NewCategoryService(repos.Category),
		Product:    NewProductService(repos.Product, repos.Category, cfg),
		Review:     NewReviewService(repos.Review, repos.Product),
		Order:      NewOrderService(repos.Order, publisher),
		Statistics: NewStatisticsService(repos.Statistics),
	}
}
