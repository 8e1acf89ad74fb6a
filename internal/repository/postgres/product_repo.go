package postgres

import (
	"context"
	"strings"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listColumns are the product fields returned by catalog listings.
var listColumns = []string{
	"products.id", "products.name", "products.slug", "products.description",
	"products.price", "products.images", "products.category_id", "products.created_at",
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// List returns one page of products matching the query and the number of
// products matching the filter regardless of paging.
func (r *productRepository) List(ctx context.Context, query domain.ProductQuery) ([]*domain.Product, int64, error) {
	filtered := applyProductFilter(r.db.WithContext(ctx).Model(&domain.Product{}), query.Filter).
		Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []*domain.Product
	err := filtered.
		Select(listColumns).
		Order(productOrder(query.Sort)).
		Order("products.id ASC").
		Offset(query.Page.Skip()).
		Limit(query.Page.PerPage).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func applyProductFilter(db *gorm.DB, filter domain.ProductFilter) *gorm.DB {
	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		db = db.Where(
			"(products.name ILIKE ? OR products.description ILIKE ? OR EXISTS ("+
				"SELECT 1 FROM categories WHERE categories.id = products.category_id AND categories.name ILIKE ?))",
			pattern, pattern, pattern,
		)
	}
	if len(filter.Ratings) > 0 {
		db = db.Where(
			"EXISTS (SELECT 1 FROM reviews WHERE reviews.product_id = products.id AND reviews.rating IN ?)",
			filter.Ratings,
		)
	}
	if filter.MinPrice != nil {
		db = db.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("products.price <= ?", *filter.MaxPrice)
	}
	return db
}

func productOrder(sort domain.ProductSort) string {
	switch sort {
	case domain.ProductSortHighPrice:
		return "products.price DESC"
	case domain.ProductSortLowPrice:
		return "products.price ASC"
	case domain.ProductSortOldest:
		return "products.created_at ASC"
	default:
		return "products.created_at DESC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// withDetails preloads the category and the reviews, newest first, with a
// snapshot of each author.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar_path")
		})
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := withDetails(r.db.WithContext(ctx)).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product domain.Product
	err := withDetails(r.db.WithContext(ctx)).First(&product, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	var products []*domain.Product
	err := withDetails(r.db.WithContext(ctx)).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByCategoryName returns products whose category is named categoryName,
// newest first, leaving out the row whose id equals excludeID.
func (r *productRepository) GetByCategoryName(ctx context.Context, categoryName string, excludeID uuid.UUID) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Select(listColumns).
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ?", categoryName).
		Where("products.id <> ?", excludeID).
		Order("products.created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).
		Model(product).
		Select("name", "slug", "description", "price", "images", "category_id").
		Updates(product).Error
}

// Delete removes the product together with its favorite links and reviews.
// It returns gorm.ErrRecordNotFound when no row matched.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM user_favorites WHERE product_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *productRepository) SlugTaken(ctx context.Context, slug string, exceptID uuid.UUID) (bool, error) {
	return slugTaken(ctx, r.db, &domain.Product{}, slug, exceptID)
}
