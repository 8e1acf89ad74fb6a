package service

import (
	"context"
	"errors"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	return category, categoryErr(err)
}

func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	return category, categoryErr(err)
}

// Create inserts an unnamed placeholder category for the admin to fill in.
func (s *CategoryService) Create(ctx context.Context) (*domain.Category, error) {
	category := &domain.Category{ID: uuid.New()}

	slug, err := uniqueSlug(ctx, "", "category", category.ID, s.categoryRepo.SlugTaken)
	if err != nil {
		return nil, err
	}
	category.Slug = slug

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, conflictErr(err)
	}
	return category, nil
}

// Update renames the category and regenerates its slug.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Category, error) {
	category, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(ctx, name, "category", category.ID, s.categoryRepo.SlugTaken)
	if err != nil {
		return nil, err
	}
	category.Name = name
	category.Slug = slug

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, conflictErr(err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return categoryErr(s.categoryRepo.Delete(ctx, id))
}

func categoryErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

// conflictErr maps a unique index violation to ErrSlugTaken.
func conflictErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSlugTaken
	}
	return err
}
