package service

import (
	"context"
	"errors"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPublisher is notified after an order has been committed.
type OrderPublisher interface {
	PublishOrder(order *domain.Order)
}

type OrderService struct {
	orderRepo repository.OrderRepository
	publisher OrderPublisher
}

func NewOrderService(orderRepo repository.OrderRepository, publisher OrderPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

type PlaceOrderInput struct {
	Status domain.OrderStatus
	Items  []OrderItemInput
}

func (s *OrderService) Place(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*domain.Order, error) {
	status := input.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	if !status.IsValid() {
		return nil, invalid(domain.ErrInvalidOrderStatus)
	}
	if len(input.Items) == 0 {
		return nil, invalid(domain.ErrEmptyOrder)
	}

	order := &domain.Order{
		ID:     uuid.New(),
		Status: status,
		UserID: userID,
		Items:  make([]domain.OrderItem, 0, len(input.Items)),
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, invalid(domain.ErrInvalidQuantity)
		}
		if item.Price.IsNegative() {
			return nil, invalid(domain.ErrNegativePrice)
		}
		if !domain.ValidPrice(item.Price) {
			return nil, invalid(domain.ErrInvalidPrice)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrMissingProducts) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if s.publisher != nil {
		s.publisher.PublishOrder(order)
	}
	return order, nil
}

func (s *OrderService) GetAll(ctx context.Context) ([]*domain.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

func (s *OrderService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	return s.orderRepo.GetByUserID(ctx, userID)
}
