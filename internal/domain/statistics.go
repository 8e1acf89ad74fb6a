package domain

import "github.com/shopspring/decimal"

// Statistic is one named figure of the admin dashboard.
type Statistic struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// StoreTotals are the raw counters behind the dashboard.
type StoreTotals struct {
	Orders  int64
	Reviews int64
	Users   int64
	Revenue decimal.Decimal
}
