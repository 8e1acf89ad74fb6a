package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/dom/storefront-api/internal/slug"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
	isAdmin  bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	short := uuid.New().String()[:8]
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", short),
		password: "testpassword123",
		name:     "user_" + short,
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithAdmin marks the user as an administrator
func (b *UserBuilder) WithAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := TestHasher().Hash(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: hash,
		Name:         b.name,
		AvatarPath:   domain.DefaultAvatarPath,
		IsAdmin:      b.isAdmin,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"isAdmin"`
	} `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates the user and logs in through the API,
// returning the user and an access token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": password,
	})

	resp, err := http.Post(ts.URL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, authResp.AccessToken
}

// CategoryBuilder creates test categories
type CategoryBuilder struct {
	name string
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{name: "Category " + uuid.New().String()[:8]}
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) Build(t *testing.T, db *gorm.DB) *domain.Category {
	t.Helper()

	category := &domain.Category{
		ID:   uuid.New(),
		Name: b.name,
		Slug: slug.Make(b.name) + "-" + uuid.New().String()[:6],
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

// ProductBuilder creates test products
type ProductBuilder struct {
	name        string
	description string
	price       decimal.Decimal
	images      []string
	category    *domain.Category
	createdAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		name:   "Product " + uuid.New().String()[:8],
		price:  decimal.NewFromInt(10),
		images: []string{"/uploads/product.png"},
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

func (b *ProductBuilder) WithDescription(description string) *ProductBuilder {
	b.description = description
	return b
}

// WithPrice takes a decimal string such as "19.99"
func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.price = decimal.RequireFromString(price)
	return b
}

func (b *ProductBuilder) WithCategory(category *domain.Category) *ProductBuilder {
	b.category = category
	return b
}

// WithCreatedAt pins the creation time so date sorts are deterministic
func (b *ProductBuilder) WithCreatedAt(createdAt time.Time) *ProductBuilder {
	b.createdAt = createdAt
	return b
}

func (b *ProductBuilder) Build(t *testing.T, db *gorm.DB) *domain.Product {
	t.Helper()

	product := &domain.Product{
		ID:          uuid.New(),
		Name:        b.name,
		Slug:        slug.Make(b.name) + "-" + uuid.New().String()[:6],
		Description: b.description,
		Price:       b.price,
		Images:      datatypes.JSONSlice[string](b.images),
		CreatedAt:   b.createdAt,
	}
	if b.category != nil {
		product.CategoryID = &b.category.ID
	}

	if err := db.Omit("Category").Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}

// SeedReview stores a review of product by user with the given rating
func SeedReview(t *testing.T, db *gorm.DB, user *domain.User, product *domain.Product, rating int) *domain.Review {
	t.Helper()

	review := &domain.Review{
		ID:        uuid.New(),
		Rating:    rating,
		Text:      fmt.Sprintf("rated %d", rating),
		UserID:    user.ID,
		ProductID: product.ID,
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("failed to create review: %v", err)
	}
	return review
}

// SeedOrder stores an order for user with one line per product
func SeedOrder(t *testing.T, db *gorm.DB, user *domain.User, quantity int, products ...*domain.Product) *domain.Order {
	t.Helper()

	order := &domain.Order{
		ID:     uuid.New(),
		Status: domain.OrderStatusPending,
		UserID: user.ID,
	}
	for _, p := range products {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: p.ID,
			Quantity:  quantity,
			Price:     p.Price,
		})
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return order
}
