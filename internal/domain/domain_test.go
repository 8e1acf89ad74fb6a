package domain_test

import (
	"testing"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseProductSort(t *testing.T) {
	tests := []struct {
		in   string
		want domain.ProductSort
	}{
		{in: "high-price", want: domain.ProductSortHighPrice},
		{in: "low-price", want: domain.ProductSortLowPrice},
		{in: "oldest", want: domain.ProductSortOldest},
		{in: "newest", want: domain.ProductSortNewest},
		{in: "", want: domain.ProductSortNewest},
		{in: "random", want: domain.ProductSortNewest},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseProductSort(tt.in))
		})
	}
}

func TestPage_Skip(t *testing.T) {
	assert.Equal(t, 0, domain.Page{Number: 1, PerPage: 10}.Skip())
	assert.Equal(t, 10, domain.Page{Number: 2, PerPage: 10}.Skip())
	assert.Equal(t, 60, domain.Page{Number: 3, PerPage: 30}.Skip())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, domain.OrderStatusPending.IsValid())
	assert.True(t, domain.OrderStatusDelivered.IsValid())
	assert.False(t, domain.OrderStatus("LOST").IsValid())
	assert.False(t, domain.OrderStatus("").IsValid())
}

func TestOrder_Total(t *testing.T) {
	order := &domain.Order{
		Items: []domain.OrderItem{
			{Quantity: 2, Price: decimal.RequireFromString("10.50")},
			{Quantity: 1, Price: decimal.RequireFromString("4.25")},
		},
	}
	assert.True(t, decimal.RequireFromString("25.25").Equal(order.Total()))
	assert.True(t, (&domain.Order{}).Total().IsZero())
}

func TestUser_HasFavorite(t *testing.T) {
	liked := uuid.New()
	user := &domain.User{Favorites: []domain.Product{{ID: liked}}}

	assert.True(t, user.HasFavorite(liked))
	assert.False(t, user.HasFavorite(uuid.New()))
}

func TestValidPrice(t *testing.T) {
	tests := []struct {
		price string
		want  bool
	}{
		{"0", true},
		{"19.99", true},
		{"19.990", true},
		{"9999999999.99", true},
		{"10000000000", false},
		{"1e13", false},
		{"0.001", false},
		{"-5.25", true},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidPrice(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestValidRating(t *testing.T) {
	assert.False(t, domain.ValidRating(0))
	assert.True(t, domain.ValidRating(1))
	assert.True(t, domain.ValidRating(5))
	assert.False(t, domain.ValidRating(6))
}
