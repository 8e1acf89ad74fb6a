package postgres

import (
	"context"

	"github.com/dom/storefront-api/internal/domain"
	"gorm.io/gorm"
)

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{db: db}
}

func (r *statisticsRepository) Totals(ctx context.Context) (*domain.StoreTotals, error) {
	db := r.db.WithContext(ctx)
	totals := &domain.StoreTotals{}

	if err := db.Model(&domain.Order{}).Count(&totals.Orders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Review{}).Count(&totals.Reviews).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.User{}).Count(&totals.Users).Error; err != nil {
		return nil, err
	}

	err := db.Model(&domain.OrderItem{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Row().
		Scan(&totals.Revenue)
	if err != nil {
		return nil, err
	}

	return totals, nil
}
