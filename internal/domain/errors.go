package domain

import "errors"

// Price validation errors
var (
	ErrInvalidPrice = errors.New("price must be below 10000000000 with at most two decimal places")
)

// Review validation errors
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Order validation errors
var (
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrNegativePrice      = errors.New("price must not be negative")
)
