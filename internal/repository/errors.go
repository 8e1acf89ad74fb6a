package repository

import "errors"

// ErrMissingProducts is returned when an order references a product that
// does not exist.
var ErrMissingProducts = errors.New("order references unknown products")
