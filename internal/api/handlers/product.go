package handlers

import (
	"net/http"

	"github.com/dom/storefront-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	productService *service.ProductService
	log            *zap.Logger
}

func NewProductHandler(productService *service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{productService: productService, log: log}
}

type productRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gt=0,lt=10000000000"`
	Images      []string        `json:"images" validate:"omitempty,dive,required"`
	CategoryID  string          `json:"categoryId" validate:"required,uuid"`
}

type productPageResponse struct {
	Products []productView `json:"products"`
	Length   int64         `json:"length"`
}

type createdResponse struct {
	ID uuid.UUID `json:"id"`
}

// List handles GET /products with paging, sorting and filter query params.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.productService.List(r.Context(), service.ListProductsInput{
		Page:       q.Get("page"),
		PerPage:    q.Get("perPage"),
		Sort:       q.Get("sort"),
		SearchTerm: q.Get("searchTerm"),
		Ratings:    q.Get("ratings"),
		MinPrice:   q.Get("minPrice"),
		MaxPrice:   q.Get("maxPrice"),
	})
	if err != nil {
		respondError(w, h.log, "product.List", err)
		return
	}

	writeJSON(w, http.StatusOK, productPageResponse{
		Products: toProductViews(page.Products),
		Length:   page.Length,
	})
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, h.log, "product.GetByID", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, h.log, "product.GetBySlug", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetByCategory(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, h.log, "product.GetByCategory", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductViews(products))
}

func (h *ProductHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	products, err := h.productService.GetSimilar(r.Context(), id)
	if err != nil {
		respondError(w, h.log, "product.GetSimilar", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductViews(products))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := h.productService.Create(r.Context())
	if err != nil {
		respondError(w, h.log, "product.Create", err)
		return
	}
	writeJSON(w, http.StatusOK, createdResponse{ID: id})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, h.log, "product.Update", err)
		return
	}

	product, err := h.productService.Update(r.Context(), id, service.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		CategoryID:  uuid.MustParse(req.CategoryID),
	})
	if err != nil {
		respondError(w, h.log, "product.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		respondError(w, h.log, "product.Delete", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
