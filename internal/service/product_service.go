package service

import (
	"context"
	"errors"

	"github.com/dom/storefront-api/internal/config"
	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductService struct {
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	defaultPerPage int
	maxPerPage     int
}

func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, cfg *config.Config) *ProductService {
	return &ProductService{
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		defaultPerPage: cfg.DefaultPerPage,
		maxPerPage:     cfg.MaxPerPage,
	}
}

// ListProductsInput holds the raw listing query parameters.
type ListProductsInput struct {
	Page       string
	PerPage    string
	Sort       string
	SearchTerm string
	Ratings    string
	MinPrice   string
	MaxPrice   string
}

type ProductPage struct {
	Products []*domain.Product `json:"products"`
	Length   int64             `json:"length"`
}

type UpdateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Images      []string
	CategoryID  uuid.UUID
}

// BuildQuery turns raw query parameters into a listing query.
func (s *ProductService) BuildQuery(input ListProductsInput) domain.ProductQuery {
	return domain.ProductQuery{
		Filter: domain.ProductFilter{
			SearchTerm: input.SearchTerm,
			Ratings:    ParseRatings(input.Ratings),
			MinPrice:   ParsePrice(input.MinPrice),
			MaxPrice:   ParsePrice(input.MaxPrice),
		},
		Sort: domain.ParseProductSort(input.Sort),
		Page: ParsePage(input.Page, input.PerPage, s.defaultPerPage, s.maxPerPage),
	}
}

func (s *ProductService) List(ctx context.Context, input ListProductsInput) (*ProductPage, error) {
	products, total, err := s.productRepo.List(ctx, s.BuildQuery(input))
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return &ProductPage{Products: products, Length: total}, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	return product, productErr(err)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	return product, productErr(err)
}

func (s *ProductService) GetByCategory(ctx context.Context, categorySlug string) ([]*domain.Product, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, categoryErr(err)
	}
	return s.productRepo.GetByCategoryID(ctx, category.ID)
}

// GetSimilar returns products sharing the product's category name. The
// exclusion compares product ids against the product's category id, so the
// product itself is part of the result.
func (s *ProductService) GetSimilar(ctx context.Context, id uuid.UUID) ([]*domain.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Category == nil {
		return []*domain.Product{}, nil
	}
	return s.productRepo.GetByCategoryName(ctx, product.Category.Name, product.Category.ID)
}

// Create inserts an empty placeholder product and returns its id.
func (s *ProductService) Create(ctx context.Context) (uuid.UUID, error) {
	product := &domain.Product{ID: uuid.New(), Images: datatypes.JSONSlice[string]{}}

	slug, err := uniqueSlug(ctx, "", "product", product.ID, s.productRepo.SlugTaken)
	if err != nil {
		return uuid.Nil, err
	}
	product.Slug = slug

	if err := s.productRepo.Create(ctx, product); err != nil {
		return uuid.Nil, conflictErr(err)
	}
	return product.ID, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	if !input.Price.IsPositive() || !domain.ValidPrice(input.Price) {
		return nil, invalid(domain.ErrInvalidPrice)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, productErr(err)
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, categoryErr(err)
	}

	slug, err := uniqueSlug(ctx, input.Name, "product", product.ID, s.productRepo.SlugTaken)
	if err != nil {
		return nil, err
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Images = datatypes.JSONSlice[string](images)
	product.CategoryID = &category.ID
	product.Category = category
	product.Slug = slug

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, conflictErr(err)
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.productRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrProductInUse
	}
	return productErr(err)
}

func productErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}
