package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prices are rendered as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string                      `json:"name" gorm:"not null;default:''"`
	Slug        string                      `json:"slug" gorm:"uniqueIndex;not null"`
	Description string                      `json:"description" gorm:"not null;default:''"`
	Price       decimal.Decimal             `json:"price" gorm:"type:numeric(12,2);not null;default:0"`
	Images      datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	CategoryID  *uuid.UUID                  `json:"categoryId" gorm:"type:uuid;index"`
	Category    *Category                   `json:"category,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Reviews     []Review                    `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// MaxPrice is the smallest amount a numeric(12,2) price column cannot hold.
var MaxPrice = decimal.New(1, 10)

// ValidPrice reports whether d fits a price column: below MaxPrice and with
// no digits finer than a cent.
func ValidPrice(d decimal.Decimal) bool {
	return d.LessThan(MaxPrice) && d.Equal(d.Truncate(2))
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	return nil
}

// ProductSort selects the ordering of a product listing.
type ProductSort string

const (
	ProductSortHighPrice ProductSort = "high-price"
	ProductSortLowPrice  ProductSort = "low-price"
	ProductSortNewest    ProductSort = "newest"
	ProductSortOldest    ProductSort = "oldest"
)

// ParseProductSort maps a query value to a sort key. Unknown values sort
// newest first.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case ProductSortHighPrice, ProductSortLowPrice, ProductSortOldest:
		return ProductSort(s)
	default:
		return ProductSortNewest
	}
}

// ProductFilter holds the active filter groups of a listing. Groups combine
// with AND; the search term matches category name, product name or
// description, case-insensitively.
type ProductFilter struct {
	SearchTerm string
	Ratings    []int
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// Page is a resolved page/perPage pair.
type Page struct {
	Number  int
	PerPage int
}

func (p Page) Skip() int {
	return (p.Number - 1) * p.PerPage
}

// ProductQuery is a complete listing request.
type ProductQuery struct {
	Filter ProductFilter
	Sort   ProductSort
	Page   Page
}
