package handlers

import (
	"time"

	"github.com/dom/storefront-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userView is the public identity returned with a session.
type userView struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

func toUserView(u *domain.User) userView {
	return userView{ID: u.ID, Email: u.Email, IsAdmin: u.IsAdmin}
}

type profileView struct {
	ID         uuid.UUID      `json:"id"`
	Email      string         `json:"email"`
	Name       string         `json:"name"`
	Phone      string         `json:"phone"`
	AvatarPath string         `json:"avatarPath"`
	IsAdmin    bool           `json:"isAdmin"`
	Favorites  []favoriteView `json:"favorites"`
}

type favoriteView struct {
	ID     uuid.UUID       `json:"id"`
	Name   string          `json:"name"`
	Slug   string          `json:"slug"`
	Price  decimal.Decimal `json:"price"`
	Images []string        `json:"images"`
}

func toProfileView(u *domain.User) profileView {
	favorites := make([]favoriteView, 0, len(u.Favorites))
	for _, p := range u.Favorites {
		favorites = append(favorites, favoriteView{
			ID:     p.ID,
			Name:   p.Name,
			Slug:   p.Slug,
			Price:  p.Price,
			Images: images(p.Images),
		})
	}
	return profileView{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Phone:      u.Phone,
		AvatarPath: u.AvatarPath,
		IsAdmin:    u.IsAdmin,
		Favorites:  favorites,
	}
}

type categoryView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

func toCategoryView(c *domain.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCategoryViews(categories []*domain.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, toCategoryView(c))
	}
	return views
}

// authorView is the snapshot of a review's author.
type authorView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	AvatarPath string    `json:"avatarPath"`
}

type reviewView struct {
	ID        uuid.UUID   `json:"id"`
	Rating    int         `json:"rating"`
	Text      string      `json:"text"`
	ProductID uuid.UUID   `json:"productId"`
	User      *authorView `json:"user,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toReviewView(r *domain.Review) reviewView {
	v := reviewView{
		ID:        r.ID,
		Rating:    r.Rating,
		Text:      r.Text,
		ProductID: r.ProductID,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		v.User = &authorView{ID: r.User.ID, Name: r.User.Name, AvatarPath: r.User.AvatarPath}
	}
	return v
}

func toReviewViews(reviews []*domain.Review) []reviewView {
	views := make([]reviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, toReviewView(r))
	}
	return views
}

type productView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	CategoryID  *uuid.UUID      `json:"categoryId"`
	Category    *categoryView   `json:"category,omitempty"`
	Reviews     []reviewView    `json:"reviews,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toProductView(p *domain.Product) productView {
	v := productView{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price,
		Images:      images(p.Images),
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
	if p.Category != nil {
		c := toCategoryView(p.Category)
		v.Category = &c
	}
	for i := range p.Reviews {
		v.Reviews = append(v.Reviews, toReviewView(&p.Reviews[i]))
	}
	return v
}

func toProductViews(products []*domain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

type orderItemView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Product   *productView    `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderView struct {
	ID        uuid.UUID          `json:"id"`
	Status    domain.OrderStatus `json:"status"`
	UserID    uuid.UUID          `json:"userId"`
	Items     []orderItemView    `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toOrderView(o *domain.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		iv := orderItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			pv := toProductView(item.Product)
			iv.Product = &pv
		}
		items = append(items, iv)
	}
	return orderView{
		ID:        o.ID,
		Status:    o.Status,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total(),
		CreatedAt: o.CreatedAt,
	}
}

func toOrderViews(orders []*domain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return views
}

func images(src []string) []string {
	if src == nil {
		return []string{}
	}
	return src
}
