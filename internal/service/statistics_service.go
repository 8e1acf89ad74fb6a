package service

import (
	"context"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
)

type StatisticsService struct {
	statsRepo repository.StatisticsRepository
}

func NewStatisticsService(statsRepo repository.StatisticsRepository) *StatisticsService {
	return &StatisticsService{statsRepo: statsRepo}
}

func (s *StatisticsService) Main(ctx context.Context) ([]domain.Statistic, error) {
	totals, err := s.statsRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	return []domain.Statistic{
		{Name: "Orders", Value: totals.Orders},
		{Name: "Reviews", Value: totals.Reviews},
		{Name: "Users", Value: totals.Users},
		{Name: "Total amount", Value: totals.Revenue},
	}, nil
}
